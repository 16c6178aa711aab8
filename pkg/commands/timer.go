package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/timer"
)

func addTimer(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "timer",
		Short: "show the study timer",
		Example: `
studysync timer
studysync timer start
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Status{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addTimerStart(cmd)
	addTimerPause(cmd)
	addTimerReset(cmd)
	addTimerSet(cmd)
	addTimerStatus(cmd)
	addTimerWatch(cmd)

	topLevel.AddCommand(cmd)
}

func addTimerStatus(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "print the persisted countdown",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Status{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTimerStart(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "start",
		Short: "run the countdown in the foreground (Ctrl-C pauses)",
		Example: `
studysync timer start
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			// Ctrl-C cancels the run; the engine persists the remaining time.
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			r := timer.Start{Service: s}
			err = r.Do(ctx)
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTimerPause(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "pause",
		Short: "pause the countdown, keeping the remaining time",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Pause{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTimerReset(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "reset the countdown to 25 minutes",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Reset{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTimerSet(topLevel *cobra.Command) {
	var minutes int

	cmd := &cobra.Command{
		Use:   "set <minutes>",
		Short: "set the countdown to a preset number of minutes",
		Example: `
studysync timer set 50
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a number of minutes")
			}
			var err error
			minutes, err = strconv.Atoi(args[0])
			return err
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Set{
				Minutes: minutes,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addTimerWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "open the full-screen live countdown",
		Example: `
studysync timer watch
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := timer.Watch{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
