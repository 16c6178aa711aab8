package options

import (
	"github.com/spf13/cobra"
)

// IDOptions captures the record id argument and the show-id listing flag.
type IDOptions struct {
	ID     string
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVar(&o.ShowID, "show-id", false,
		"Show record ids in listings.")
}
