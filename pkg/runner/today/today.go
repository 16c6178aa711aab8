// Package today renders the dashboard: today's items, quick stats, the mini
// calendar, and a motivational quote.
package today

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/fatih/color"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/printers"
	"tableflip.dev/studysync/pkg/views"
)

type Today struct {
	ShowID bool
	// Watch keeps the dashboard open, redrawing whenever the store changes.
	Watch bool

	Service *app.Service
}

func (t *Today) Do(ctx context.Context) error {
	if err := t.render(); err != nil {
		return err
	}
	if !t.Watch {
		return nil
	}

	events, err := t.Service.Persistence.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-events:
			if !ok {
				return nil
			}
			_, _ = fmt.Fprint(color.Output, "\033[2J\033[H")
			if err := t.render(); err != nil {
				return err
			}
		}
	}
}

func (t *Today) render() error {
	u, err := t.Service.CurrentUser()
	if err != nil {
		return err
	}

	now := t.Service.Now()
	schedules := t.Service.Persistence.Schedules()
	reminders := t.Service.Persistence.Reminders()

	pp := printers.PrettyPrint{ShowID: t.ShowID}
	pp.Title("Welcome back, " + u.Name + "!")
	pp.NewLine()

	v := views.TodaysItems(schedules, reminders, now)
	pp.TitleWithCount("Today's Schedule", len(v.Schedules))
	pp.Schedules(v.Schedules...)
	pp.TitleWithCount("Upcoming Reminders", len(v.Reminders))
	pp.Reminders(v.Reminders...)

	pp.Title("Quick Stats")
	pp.QuickStats(views.Quick(schedules, reminders, now))

	pp.MonthCalendar(views.MonthCalendar(schedules, reminders, now.Year(), now.Month(), now))

	pp.Quote(views.RandomQuote(rand.New(rand.NewSource(now.UnixNano()))))
	return nil
}
