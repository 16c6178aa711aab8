package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/session"
)

func addLogin(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "login <email> <password>",
		Short: "log in, or bootstrap a demo account",
		Example: `
studysync login student@example.com hunter2
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires an email and a password")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			l := session.Login{
				Email:    args[0],
				Password: args[1],
				Service:  s,
			}
			err = l.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
