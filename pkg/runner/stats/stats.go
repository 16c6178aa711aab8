// Package stats renders study statistics and the reminder priority chart.
package stats

import (
	"context"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/printers"
	"tableflip.dev/studysync/pkg/views"
)

type Stats struct {
	Service *app.Service
}

func (s *Stats) Do(ctx context.Context) error {
	now := s.Service.Now()
	schedules := s.Service.Persistence.Schedules()
	reminders := s.Service.Persistence.Reminders()

	pp := printers.PrettyPrint{}
	pp.Title("Study Statistics")
	pp.StudyStats(views.Study(schedules, reminders, now))

	pp.Title("Reminder Priorities")
	pp.PriorityChart(views.PriorityDistribution(reminders))
	return nil
}
