// Package calendar renders the mini month calendar for any month.
package calendar

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/printers"
	"tableflip.dev/studysync/pkg/views"
)

type Calendar struct {
	// Month selects which month to render, formatted YYYY-MM. Empty means
	// the current month.
	Month string

	Service *app.Service
}

func (c *Calendar) Do(ctx context.Context) error {
	now := c.Service.Now()
	year, month := now.Year(), now.Month()
	if c.Month != "" {
		t, err := time.Parse("2006-01", c.Month)
		if err != nil {
			return fmt.Errorf("calendar: want YYYY-MM, got %q: %w", c.Month, err)
		}
		year, month = t.Year(), t.Month()
	}

	mv := views.MonthCalendar(c.Service.Persistence.Schedules(), c.Service.Persistence.Reminders(), year, month, now)
	pp := printers.PrettyPrint{}
	pp.MonthCalendar(mv)
	return nil
}
