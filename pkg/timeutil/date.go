// Package timeutil holds the date and clock parsing shared by the model,
// derived views, and printers.
package timeutil

import (
	"fmt"
	"time"
)

const (
	// LayoutDate is the calendar date form records store, e.g. 2026-09-01.
	LayoutDate = "2006-01-02"
	// LayoutClock is the 24 hour wall clock form records store, e.g. 14:30.
	LayoutClock = "15:04"
)

// ParseDate parses a stored YYYY-MM-DD date.
func ParseDate(v string) (time.Time, error) {
	t, err := time.Parse(LayoutDate, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// ParseClock parses a stored HH:MM 24 hour time of day.
func ParseClock(v string) (time.Time, error) {
	t, err := time.Parse(LayoutClock, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// DateOf formats a moment as the stored date form in its own location.
func DateOf(t time.Time) string {
	return t.Format(LayoutDate)
}

// Clock12 renders a stored HH:MM as a 12 hour display time, e.g. "2:30 PM".
// Unparseable input is returned untouched so a corrupt record still lists.
func Clock12(v string) string {
	t, err := ParseClock(v)
	if err != nil {
		return v
	}
	return t.Format("3:04 PM")
}

// LongDate renders a stored date like "Mon, Sep 1". Unparseable input is
// returned untouched.
func LongDate(v string) string {
	t, err := ParseDate(v)
	if err != nil {
		return v
	}
	return t.Format("Mon, Jan 2")
}

// DaysIn returns the number of days in then's month.
func DaysIn(then time.Time) int {
	return time.Date(then.Year(), then.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartDay returns the weekday the first of then's month falls on.
func StartDay(then time.Time) time.Weekday {
	return time.Date(then.Year(), then.Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}

// Clock renders whole seconds as MM:SS for the countdown display.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
