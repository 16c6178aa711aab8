package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/stats"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "show study statistics and the reminder priority chart",
		Example: `
studysync stats
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := stats.Stats{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
