package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/runner/session"
)

func addSocial(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:       "social <provider>",
		Short:     "log in through a simulated social provider",
		ValidArgs: app.SocialProviders(),
		Example: `
studysync social google
studysync social github
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a provider name")
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := session.Social{
				Provider: args[0],
				Service:  s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
