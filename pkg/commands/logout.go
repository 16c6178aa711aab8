package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/commands/options"
	"tableflip.dev/studysync/pkg/runner/session"
)

func addLogout(topLevel *cobra.Command) {
	co := &options.ConfirmOptions{}

	cmd := &cobra.Command{
		Use:   "logout",
		Short: "end the session, keeping the stored account",
		Example: `
studysync logout
studysync logout --yes
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if !co.Confirm("Log out?") {
				return nil
			}
			s, err := newService()
			if err != nil {
				return err
			}
			r := session.Logout{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddYesArg(cmd, co)

	topLevel.AddCommand(cmd)
}
