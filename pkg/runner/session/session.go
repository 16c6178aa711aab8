// Package session holds the runners behind the login, signup, social, logout,
// and whoami commands.
package session

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studysync/pkg/app"
)

type Login struct {
	Email    string
	Password string

	Service *app.Service
}

func (l *Login) Do(ctx context.Context) error {
	_, err := l.Service.Login(l.Email, l.Password)
	return err
}

type Signup struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	AcceptTerms     bool

	Service *app.Service
}

func (s *Signup) Do(ctx context.Context) error {
	_, err := s.Service.Signup(s.Name, s.Email, s.Password, s.ConfirmPassword, s.AcceptTerms)
	return err
}

type Social struct {
	Provider string

	Service *app.Service
}

func (s *Social) Do(ctx context.Context) error {
	_, err := s.Service.SocialBootstrap(s.Provider)
	return err
}

type Logout struct {
	Service *app.Service
}

func (l *Logout) Do(ctx context.Context) error {
	return l.Service.Logout()
}

type WhoAmI struct {
	Service *app.Service
}

func (w *WhoAmI) Do(ctx context.Context) error {
	u, err := w.Service.CurrentUser()
	if err != nil {
		return err
	}

	b := color.New(color.Bold)
	_, _ = b.Fprintln(color.Output, u.Name)
	_, _ = fmt.Fprintln(color.Output, u.Email)
	if u.StudentID != "" {
		_, _ = fmt.Fprintln(color.Output, u.StudentID)
	}
	if u.Major != "" {
		_, _ = fmt.Fprintln(color.Output, u.Major)
	}
	return nil
}
