// Package views computes the dashboard's derived read models. Everything here
// is a pure function over the current records plus an explicit "now"; results
// are recomputed on demand and never cached.
package views

import (
	"math"
	"time"

	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/timeutil"
)

// TodayView holds the items dated on the current local calendar day.
type TodayView struct {
	Schedules []model.Schedule
	Reminders []model.Reminder
}

// TodaysItems filters schedules and reminders to those dated now's day.
func TodaysItems(schedules []model.Schedule, reminders []model.Reminder, now time.Time) TodayView {
	today := timeutil.DateOf(now)
	v := TodayView{}
	for _, s := range schedules {
		if s.Date == today {
			v.Schedules = append(v.Schedules, s)
		}
	}
	for _, r := range reminders {
		if r.Date == today {
			v.Reminders = append(v.Reminders, r)
		}
	}
	return v
}

// QuickStats summarizes the dashboard counters.
type QuickStats struct {
	TodayCount    int
	ScheduleCount int
	ReminderCount int
}

// Quick counts today's combined items plus the collection totals.
func Quick(schedules []model.Schedule, reminders []model.Reminder, now time.Time) QuickStats {
	v := TodaysItems(schedules, reminders, now)
	return QuickStats{
		TodayCount:    len(v.Schedules) + len(v.Reminders),
		ScheduleCount: len(schedules),
		ReminderCount: len(reminders),
	}
}

// StudyStats summarizes accumulated study effort.
type StudyStats struct {
	TotalHours     float64
	TasksCompleted int
	Streak         int
}

// Study totals scheduled hours and completed tasks. Streak is a fixed
// placeholder: 3 when anything is dated today, else 0. It is intentionally not
// a real consecutive-day computation.
func Study(schedules []model.Schedule, reminders []model.Reminder, now time.Time) StudyStats {
	minutes := 0
	completed := 0
	for _, s := range schedules {
		d := s.DurationMinutes
		if d == 0 {
			d = model.DefaultDurationMinutes
		}
		minutes += d
		if s.Completed {
			completed++
		}
	}
	for _, r := range reminders {
		if r.Completed {
			completed++
		}
	}

	streak := 0
	v := TodaysItems(schedules, reminders, now)
	if len(v.Schedules)+len(v.Reminders) > 0 {
		streak = 3
	}

	return StudyStats{
		TotalHours:     math.Round(float64(minutes)/60*10) / 10,
		TasksCompleted: completed,
		Streak:         streak,
	}
}

// CalendarDay is one cell of the mini month calendar.
type CalendarDay struct {
	Day      int
	HasEvent bool
	IsToday  bool
}

// MonthView is the mini calendar for one month.
type MonthView struct {
	Year     int
	Month    time.Month
	StartDay time.Weekday
	Days     []CalendarDay
}

// MonthCalendar flags, for each day of the month, whether any schedule or
// reminder falls on it and whether it is now's day.
func MonthCalendar(schedules []model.Schedule, reminders []model.Reminder, year int, month time.Month, now time.Time) MonthView {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	mv := MonthView{
		Year:     year,
		Month:    month,
		StartDay: timeutil.StartDay(first),
	}

	dated := make(map[string]bool, len(schedules)+len(reminders))
	for _, s := range schedules {
		dated[s.Date] = true
	}
	for _, r := range reminders {
		dated[r.Date] = true
	}

	today := timeutil.DateOf(now)
	for day := 1; day <= timeutil.DaysIn(first); day++ {
		date := timeutil.DateOf(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
		mv.Days = append(mv.Days, CalendarDay{
			Day:      day,
			HasEvent: dated[date],
			IsToday:  date == today,
		})
	}
	return mv
}

// PrioritySlice is one level's share of the reminder priority chart.
type PrioritySlice struct {
	Priority model.Priority
	Count    int
	Percent  float64
}

// PriorityDistribution counts reminders per priority level. Percentages are
// zero when there are no reminders at all.
func PriorityDistribution(reminders []model.Reminder) []PrioritySlice {
	counts := make(map[model.Priority]int, 3)
	for _, r := range reminders {
		counts[r.Priority]++
	}
	total := counts[model.PriorityHigh] + counts[model.PriorityMedium] + counts[model.PriorityLow]

	out := make([]PrioritySlice, 0, 3)
	for _, p := range model.Priorities() {
		slice := PrioritySlice{Priority: p, Count: counts[p]}
		if total > 0 {
			slice.Percent = float64(counts[p]) / float64(total) * 100
		}
		out = append(out, slice)
	}
	return out
}
