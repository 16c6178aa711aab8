package options

import (
	"github.com/spf13/cobra"
)

// ScheduleOptions captures the schedule form fields as flags.
type ScheduleOptions struct {
	Description string
	Date        string
	Time        string
	Duration    int
	Priority    string
}

// AddScheduleArgs wires the schedule form flags on the provided command.
func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.Description, "description", "d", "",
		"Describe the entry.")
	cmd.Flags().StringVar(&o.Date, "date", "",
		"Date as YYYY-MM-DD. Defaults to today.")
	cmd.Flags().StringVar(&o.Time, "time", "",
		"Start time as HH:MM. Defaults to 09:00.")
	cmd.Flags().IntVar(&o.Duration, "duration", 0,
		"Duration in minutes. Defaults to 60.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "",
		"One of low, medium, high. Defaults to medium.")
}
