package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/timeutil"
	"tableflip.dev/studysync/pkg/views"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func doneMark(completed bool) string {
	if completed {
		return "✔"
	}
	return " "
}

func priorityLabel(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return color.New(color.FgHiRed).Sprint(p)
	case model.PriorityMedium:
		return color.New(color.FgHiYellow).Sprint(p)
	default:
		return color.New(color.FgHiGreen).Sprint(p)
	}
}

// Schedules renders a schedule listing.
func (pp *PrettyPrint) Schedules(schedules ...model.Schedule) {
	if len(schedules) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("", "ID", "DATE", "TIME", "MIN", "PRIORITY", "TITLE")
	} else {
		tbl.AddRow("", "DATE", "TIME", "MIN", "PRIORITY", "TITLE")
	}
	for _, s := range schedules {
		title := s.Title
		if s.Description != "" {
			title = fmt.Sprintf("%s - %s", s.Title, s.Description)
		}
		if pp.ShowID {
			tbl.AddRow(doneMark(s.Completed), s.ID, timeutil.LongDate(s.Date), timeutil.Clock12(s.Time), s.DurationMinutes, priorityLabel(s.Priority), title)
		} else {
			tbl.AddRow(doneMark(s.Completed), timeutil.LongDate(s.Date), timeutil.Clock12(s.Time), s.DurationMinutes, priorityLabel(s.Priority), title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// Reminders renders a reminder listing.
func (pp *PrettyPrint) Reminders(reminders ...model.Reminder) {
	if len(reminders) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if pp.ShowID {
		tbl.AddRow("", "ID", "DATE", "TIME", "TYPE", "PRIORITY", "TITLE")
	} else {
		tbl.AddRow("", "DATE", "TIME", "TYPE", "PRIORITY", "TITLE")
	}
	for _, r := range reminders {
		title := r.Title
		if r.Description != "" {
			title = fmt.Sprintf("%s - %s", r.Title, r.Description)
		}
		if pp.ShowID {
			tbl.AddRow(doneMark(r.Completed), r.ID, timeutil.LongDate(r.Date), timeutil.Clock12(r.Time), r.Type, priorityLabel(r.Priority), title)
		} else {
			tbl.AddRow(doneMark(r.Completed), timeutil.LongDate(r.Date), timeutil.Clock12(r.Time), r.Type, priorityLabel(r.Priority), title)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// QuickStats renders the dashboard counters.
func (pp *PrettyPrint) QuickStats(qs views.QuickStats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("today", qs.TodayCount)
	tbl.AddRow("schedules", qs.ScheduleCount)
	tbl.AddRow("reminders", qs.ReminderCount)
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// StudyStats renders accumulated effort plus the streak placeholder.
func (pp *PrettyPrint) StudyStats(st views.StudyStats) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("study hours", fmt.Sprintf("%.1f", st.TotalHours))
	tbl.AddRow("tasks completed", st.TasksCompleted)
	tbl.AddRow("day streak", st.Streak)
	_, _ = fmt.Fprintln(color.Output, tbl)
	fmt.Println("")
}

// PriorityChart renders the reminder priority distribution as bars.
func (pp *PrettyPrint) PriorityChart(dist []views.PrioritySlice) {
	for _, slice := range dist {
		bar := strings.Repeat("█", int(slice.Percent/5))
		_, _ = fmt.Fprintf(color.Output, "%8s  %-20s %3.0f%% (%d)\n",
			priorityLabel(slice.Priority), bar, slice.Percent, slice.Count)
	}
	fmt.Println("")
}

// Quote renders the dashboard's motivational quote.
func (pp *PrettyPrint) Quote(q string) {
	i := color.New(color.Faint, color.Italic)
	_, _ = i.Printf("“%s”\n\n", q)
}

// Timer renders the countdown state.
func (pp *PrettyPrint) Timer(t model.TimerState) {
	b := color.New(color.Bold)
	_, _ = b.Print(timeutil.Clock(t.Seconds))
	if t.Running {
		_, _ = fmt.Fprintln(color.Output, "  running")
	} else {
		_, _ = fmt.Fprintln(color.Output, "  paused")
	}
}
