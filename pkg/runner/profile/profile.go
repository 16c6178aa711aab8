// Package profile holds the runners behind the profile subcommands.
package profile

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studysync/pkg/app"
)

type Show struct {
	Service *app.Service
}

func (s *Show) Do(ctx context.Context) error {
	u, err := s.Service.CurrentUser()
	if err != nil {
		return err
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("name", u.Name)
	tbl.AddRow("email", u.Email)
	tbl.AddRow("student id", u.StudentID)
	tbl.AddRow("major", u.Major)
	if u.ProfilePicture != "" {
		tbl.AddRow("picture", fmt.Sprintf("set (%d bytes)", len(u.ProfilePicture)))
	} else {
		tbl.AddRow("picture", "none")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

// Set edits the profile fields; empty inputs keep the stored values.
type Set struct {
	Name      string
	Email     string
	StudentID string
	Major     string

	Service *app.Service
}

func (s *Set) Do(ctx context.Context) error {
	current, err := s.Service.CurrentUser()
	if err != nil {
		return err
	}

	name, email, studentID, major := s.Name, s.Email, s.StudentID, s.Major
	if name == "" {
		name = current.Name
	}
	if email == "" {
		email = current.Email
	}
	if studentID == "" {
		studentID = current.StudentID
	}
	if major == "" {
		major = current.Major
	}

	_, err = s.Service.UpdateProfile(name, email, studentID, major)
	return err
}

type Upload struct {
	Path string

	Service *app.Service
}

func (u *Upload) Do(ctx context.Context) error {
	return u.Service.UploadProfilePicture(u.Path)
}

type Remove struct {
	Service *app.Service
}

func (r *Remove) Do(ctx context.Context) error {
	return r.Service.RemoveProfilePicture()
}
