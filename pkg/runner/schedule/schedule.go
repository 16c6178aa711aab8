// Package schedule holds the runners behind the schedule subcommands.
package schedule

import (
	"context"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/printers"
	"tableflip.dev/studysync/pkg/timeutil"
)

type Add struct {
	Fields app.ScheduleFields

	Service *app.Service
}

func (a *Add) Do(ctx context.Context) error {
	if _, err := a.Service.AddSchedule(a.Fields); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	all := a.Service.Persistence.Schedules()
	pp.TitleWithCount("Schedule", len(all))
	pp.Schedules(all...)
	return nil
}

type Edit struct {
	ID     string
	Fields app.ScheduleFields

	Service *app.Service
}

func (e *Edit) Do(ctx context.Context) error {
	current, err := e.Service.FindSchedule(e.ID)
	if err != nil {
		return err
	}

	// Flags left unset keep the stored values, so an edit can change one
	// field at a time.
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
	if f.Duration == 0 {
		f.Duration = current.DurationMinutes
	}
	if f.Priority == "" {
		f.Priority = current.Priority
	}

	updated, err := e.Service.EditSchedule(e.ID, f)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Schedules(*updated)
	return nil
}

type Delete struct {
	ID string

	Service *app.Service
}

func (d *Delete) Do(ctx context.Context) error {
	return d.Service.DeleteSchedule(d.ID)
}

type List struct {
	ShowID bool
	Today  bool

	Service *app.Service
}

func (l *List) Do(ctx context.Context) error {
	all := l.Service.Persistence.Schedules()
	if l.Today {
		today := make([]model.Schedule, 0, len(all))
		date := timeutil.DateOf(l.Service.Now())
		for _, s := range all {
			if s.Date == date {
				today = append(today, s)
			}
		}
		all = today
	}

	pp := printers.PrettyPrint{ShowID: l.ShowID}
	pp.TitleWithCount("Schedule", len(all))
	pp.Schedules(all...)
	return nil
}

type Done struct {
	ID string

	Service *app.Service
}

func (d *Done) Do(ctx context.Context) error {
	updated, err := d.Service.ToggleScheduleDone(d.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Schedules(*updated)
	return nil
}
