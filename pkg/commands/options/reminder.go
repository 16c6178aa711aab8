package options

import (
	"github.com/spf13/cobra"
)

// ReminderOptions captures the reminder form fields as flags.
type ReminderOptions struct {
	Description string
	Date        string
	Time        string
	Type        string
}

// AddReminderArgs wires the reminder form flags on the provided command.
func AddReminderArgs(cmd *cobra.Command, o *ReminderOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the reminder.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Date as YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		"Time as HH:MM. Defaults to 12:00.")
	cmd.Flags().StringVarP(&o.Type, "type", "t", "",
		"One of assignment, exam, meeting, personal, other.")
}
