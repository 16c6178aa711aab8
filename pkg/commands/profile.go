package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/studysync/pkg/runner/profile"
)

func addProfile(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "show or edit the student profile",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := profile.Show{Service: s}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addProfileSet(cmd)
	addProfilePicture(cmd)

	topLevel.AddCommand(cmd)
}

func addProfileSet(topLevel *cobra.Command) {
	var name, email, studentID, major string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "edit profile fields, keeping the ones left unset",
		Example: `
studysync profile set --major "Computer Science"
`,
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			r := profile.Set{
				Name:      name,
				Email:     email,
				StudentID: studentID,
				Major:     major,
				Service:   s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name.")
	cmd.Flags().StringVar(&email, "email", "", "Email address.")
	cmd.Flags().StringVar(&studentID, "student-id", "", "Student id.")
	cmd.Flags().StringVar(&major, "major", "", "Field of study.")

	topLevel.AddCommand(cmd)
}

func addProfilePicture(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "picture <path>",
		Short: "store a profile picture from an image file",
		Example: `
studysync profile picture ./me.png
studysync profile picture --remove
`,
		Args: func(cmd *cobra.Command, args []string) error {
			remove, _ := cmd.Flags().GetBool("remove")
			if remove {
				return nil
			}
			if len(args) != 1 {
				return errors.New("requires a path to an image file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newService()
			if err != nil {
				return err
			}
			if remove, _ := cmd.Flags().GetBool("remove"); remove {
				r := profile.Remove{Service: s}
				return output.HandleError(r.Do(context.Background()))
			}
			r := profile.Upload{
				Path:    args[0],
				Service: s,
			}
			err = r.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().Bool("remove", false, "Remove the stored picture.")

	topLevel.AddCommand(cmd)
}
