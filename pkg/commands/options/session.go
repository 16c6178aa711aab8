package options

import (
	"github.com/spf13/cobra"
)

// SignupOptions captures the signup form fields as flags.
type SignupOptions struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool
}

// AddSignupArgs wires the signup form flags on the provided command.
func AddSignupArgs(cmd *cobra.Command, o *SignupOptions) {
	cmd.Flags().StringVar(&o.Name, "name", "", "Full name.")
	cmd.Flags().StringVar(&o.Email, "email", "", "Email address.")
	cmd.Flags().StringVar(&o.Password, "password", "", "Password.")
	cmd.Flags().StringVar(&o.ConfirmPassword, "confirm-password", "",
		"Repeat the password.")
	cmd.Flags().BoolVar(&o.AcceptTerms, "accept-terms", false,
		"Agree to the terms and conditions.")
}
