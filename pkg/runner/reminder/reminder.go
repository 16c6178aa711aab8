// Package reminder holds the runners behind the reminder subcommands.
package reminder

import (
	"context"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/printers"
	"tableflip.dev/studysync/pkg/timeutil"
)

type Add struct {
	Fields app.ReminderFields

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	if _, err := a.Service.AddReminder(a.Fields); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	all := a.Service.Persistence.Reminders()
	pp.TitleWithCount("Reminders", len(all))
	pp.Reminders(all...)
	return nil
}

type Edit struct {
	ID     string
	Fields app.ReminderFields

	Service *app.Service
}

func (e *Edit) Do(ctx context.Context) error {
	current, err := e.Service.FindReminder(e.ID)
	if err != nil {
		return err
	}

	f := e.Fields
	if f.Title == "" {
		f.Title = current.Title
	}
	if f.Description == "" {
		f.Description = current.Description
	}
	if f.Date == "" {
		f.Date = current.Date
	}
	if f.Time == "" {
		f.Time = current.Time
	}
	if f.Type == "" {
		f.Type = current.Type
	}

	updated, err := e.Service.EditReminder(e.ID, f)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Reminders(*updated)
	return nil
}

type Delete struct {
	ID string

	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	return d.Service.DeleteReminder(d.ID)
}

type List struct {
	ShowID bool
	Today  bool

	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	all := l.Service.Persistence.Reminders()
	if l.Today {
		today := make([]model.Reminder, 0, len(all))
		date := timeutil.DateOf(l.Service.Now())
		for _, r := range all {
			if r.Date == date {
				today = append(today, r)
			}
		}
		all = today
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("Reminders", len(all))
	pp.Reminders(all...)
	return nil
}

type Done struct {
	ID string

	Service *app.Service
}

func (d *Done) Do(ctx context.Context) error {
	updated, err := d.Service.ToggleReminderDone(d.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Reminders(*updated)
	return nil
}
