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
	"tableflip.dev/studysync/pkg/runner/reminder"
	"tableflip.dev/studysync/pkg/timeutil"
)

func addReminder(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"reminders"},
		Short:   "list reminders",
		Example: `
studysync reminder
studysync reminder --today --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			today, _ := cmd.Flags().GetBool("today")
			r := reminder.List{
				ShowID:  io.ShowID,
				Today:   today,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().Bool("today", false, "Only reminders dated today.")
	options.AddShowIDArgs(cmd, io)

	addReminderAdd(cmd)
	addReminderEdit(cmd)
	addReminderDelete(cmd)
	addReminderDone(cmd)

	topLevel.AddCommand(cmd)
}

func addReminderAdd(topLevel *cobra.Command) {
	ro := &options.ReminderOptions{}

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "add a reminder",
		Example: `
studysync reminder add "Submit Math Assignment" --time 23:59 -t assignment
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
			if ro.Date == "" {
				ro.Date = timeutil.DateOf(time.Now())
			}
			if ro.Time == "" {
				ro.Time = "12:00"
			}
			r := reminder.Add{
				Fields: app.ReminderFields{
					Title:       strings.Join(args, " "),
					Description: ro.Description,
					Date:        ro.Date,
					Time:        ro.Time,
					Type:        model.ReminderType(ro.Type),
				},
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddReminderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}

func addReminderEdit(topLevel *cobra.Command) {
	ro := &options.ReminderOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "edit <reminder id>",
		Short: "edit a reminder, keeping fields left unset",
		Example: `
studysync reminder edit reminder_9a2b --time 18:00
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := reminder.Edit{
				ID: args[0],
				Fields: app.ReminderFields{
					Title:       title,
					Description: ro.Description,
					Date:        ro.Date,
					Time:        ro.Time,
					Type:        model.ReminderType(ro.Type),
				},
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title.")
	options.AddReminderArgs(cmd, ro)

	topLevel.AddCommand(cmd)
}

func addReminderDelete(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:     "delete <reminder id>",
		Aliases: []string{"rm"},
		Short:   "delete a reminder",
		Example: `
studysync reminder delete reminder_9a2b --yes
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
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
			r := reminder.Delete{
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

func addReminderDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <reminder id>",
		Aliases: []string{"complete"},
		Short:   "toggle a reminder completed",
		Example: `
studysync reminder done reminder_9a2b
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a reminder id")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := reminder.Done{
				ID:      args[0],
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
