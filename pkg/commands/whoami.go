package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/session"
)

func addWhoAmI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "print the logged in student",
		Example: `
studysync whoami
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := session.WhoAmI{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
