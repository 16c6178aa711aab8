package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/commands/options"
	"tableflip.dev/studysync/pkg/runner/session"
)

func addSignup(topLevel *cobra.Command) {
	so := &options.SignupOptions{}

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "create the local account and seed demo data",
		Example: `
studysync signup --name "Ada Lovelace" --email ada@example.com \
  --password hunter2 --confirm-password hunter2 --accept-terms
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := session.Signup{
				Name:            so.Name,
				Email:           so.Email,
				Password:        so.Password,
				ConfirmPassword: so.ConfirmPassword,
				AcceptTerms:     so.AcceptTerms,
				Service:         s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddSignupArgs(cmd, so)

	topLevel.AddCommand(cmd)
}
