package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/commands/options"
	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/runner/schedule"
	"tableflip.dev/studysync/pkg/timeutil"
)

func addSchedule(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"schedules"},
		Short:   "list schedule entries",
		Example: `
studysync schedule
studysync schedule --today --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			today, _ := cmd.Flags().GetBool("today")
			r := schedule.List{
				ShowID:  io.ShowID,
				Today:   today,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().Bool("today", false, "Only entries dated today.")
	options.AddShowIDArgs(cmd, io)

	addScheduleAdd(cmd)
	addScheduleEdit(cmd)
	addScheduleDelete(cmd)
	addScheduleDone(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a schedule entry",
		Example: `
studysync schedule add "Math Lecture" --time 09:00 --duration 60 -p high
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a title")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			if so.Date == "" {
				so.Date = timeutil.DateOf(time.Now())
			}
			if so.Time == "" {
				so.Time = "09:00"
			}
			r := schedule.Add{
				Fields: app.ScheduleFields{
					Title:       strings.Join(args, " "),
					Description: so.Description,
					Date:        so.Date,
					Time:        so.Time,
					Duration:    so.Duration,
					Priority:    model.Priority(so.Priority),
				},
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddScheduleArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

func addScheduleEdit(topLevel *cobra.Command) {
	so := &options.ScheduleOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit <entry id>",
		Short: "edit a schedule entry, keeping fields left unset",
		Example: `
studysync schedule edit schedule_4f1c --time 10:00
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := schedule.Edit{
				ID: args[0],
				Fields: app.ScheduleFields{
					Title:       title,
					Description: so.Description,
					Date:        so.Date,
					Time:        so.Time,
					Duration:    so.Duration,
					Priority:    model.Priority(so.Priority),
				},
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddScheduleArgs(cmd, so)

	topLevel.AddCommand(cmd)
}

func addScheduleDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <entry id>",
		Aliases: []string{"rm"},
		Short:   "delete a schedule entry",
		Example: `
studysync schedule delete schedule_4f1c --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			if !co.Confirm("Delete " + args[0] + "?") {
				return nil
			}
			s, err := newService()
			if err != nil {
				return err
			}
			r := schedule.Delete{
				ID:      args[0],
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}

func addScheduleDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <entry id>",
		Aliases: []string{"complete"},
		Short:   "toggle a schedule entry completed",
		Example: `
studysync schedule done schedule_4f1c
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires an entry id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := schedule.Done{
				ID:      args[0],
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
