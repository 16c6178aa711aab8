package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	var month string

	cmd := &cobra.Command{
		Use:     "calendar [YYYY-MM]",
		Aliases: []string{"cal"},
		Short:   "show the mini month calendar",
		Example: `
studysync calendar
studysync calendar 2026-10
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if len(args) == 1 {
				month = args[0]
			}
			s, err := newService()
			if err != nil {
				return err
			}
			r := calendar.Calendar{
				Month:   month,
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
