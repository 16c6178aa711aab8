package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/commands/options"
	"tableflip.dev/studysync/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:     "today",
		Aliases: []string{"dashboard"},
		Short:   "show today's schedule, reminders, and quick stats",
		Example: `
studysync today
studysync today --watch
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			ctx := context.Background()
			if watch {
				var stop context.CancelFunc
				ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
				defer stop()
			}
			r := today.Today{
				ShowID:  io.ShowID,
				Watch:   watch,
				Service: s,
			}
			err = r.Do(ctx)
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep the dashboard open, redrawing when records change.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
