// Package app provides the high-level operations behind every command. A
// single Service owns persistence, notifications, and the timer engine; it
// replaces the page-global state object of the original design.
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/notify"
	"tableflip.dev/studysync/pkg/store"
	"tableflip.dev/studysync/pkg/timer"
)

// Service wraps persistence and domain mutations so the CLI and the TUI can
// share logic. Every successful mutation persists immediately.
type Service struct {
	Persistence store.Persistence
	Notifier    notify.Notifier
	Timer       *timer.Engine

	// Now is the clock used for demo seeding and derived views; tests pin it.
	Now func() time.Time
}

// New builds a Service. The notifier may be nil, in which case messages are
// discarded.
func New(p store.Persistence, n notify.Notifier) *Service {
	if n == nil {
		n = notify.Discard{}
	}
	return &Service{Persistence: p, Notifier: n, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ScheduleFields carries the schedule form inputs.
type ScheduleFields struct {
	Title       string
	Description string
	Date        string
	Time        string
	Duration    int
	Priority    model.Priority
}

// AddSchedule validates the fields, assigns a fresh id, appends, and persists.
func (s *Service) AddSchedule(f ScheduleFields) (*model.Schedule, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	sched := model.Schedule{
		ID:              model.NewID("schedule"),
		Title:           f.Title,
		Description:     f.Description,
		Date:            f.Date,
		Time:            f.Time,
		DurationMinutes: f.Duration,
		Priority:        f.Priority,
	}
	if sched.DurationMinutes == 0 {
		sched.DurationMinutes = model.DefaultDurationMinutes
	}
	if sched.Priority == "" {
		sched.Priority = model.PriorityMedium
	}
	if err := sched.Validate(); err != nil {
		s.Notifier.Error(err.Error())
		return nil, err
	}

	all := append(s.Persistence.Schedules(), sched)
	if err := s.Persistence.SaveSchedules(all); err != nil {
		return nil, err
	}
	s.Notifier.Success("Schedule saved successfully!")
	return &sched, nil
}

// EditSchedule replaces the record whose id matches, keeping the id stable.
func (s *Service) EditSchedule(id string, f ScheduleFields) (*model.Schedule, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	all := s.Persistence.Schedules()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		next := model.Schedule{
			ID:              id,
			Title:           f.Title,
			Description:     f.Description,
			Date:            f.Date,
			Time:            f.Time,
			DurationMinutes: f.Duration,
			Priority:        f.Priority,
			Completed:       all[i].Completed,
		}
		if next.DurationMinutes == 0 {
			next.DurationMinutes = all[i].DurationMinutes
		}
		if next.Priority == "" {
			next.Priority = all[i].Priority
		}
		if err := next.Validate(); err != nil {
			s.Notifier.Error(err.Error())
			return nil, err
		}
		all[i] = next
		if err := s.Persistence.SaveSchedules(all); err != nil {
			return nil, err
		}
		s.Notifier.Success("Schedule saved successfully!")
		return &next, nil
	}
	return nil, s.notFound("schedule", id)
}

// DeleteSchedule removes the record by id.
func (s *Service) DeleteSchedule(id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	all := s.Persistence.Schedules()
	kept := all[:0]
	for _, sched := range all {
		if sched.ID != id {
			kept = append(kept, sched)
		}
	}
	if len(kept) == len(all) {
		return s.notFound("schedule", id)
	}
	if err := s.Persistence.SaveSchedules(kept); err != nil {
		return err
	}
	s.Notifier.Success("Schedule deleted successfully!")
	return nil
}

// FindSchedule looks a schedule up by id.
func (s *Service) FindSchedule(id string) (*model.Schedule, error) {
	for _, sched := range s.Persistence.Schedules() {
		if sched.ID == id {
			return &sched, nil
		}
	}
	return nil, s.notFound("schedule", id)
}

// ToggleScheduleDone flips the completed flag.
func (s *Service) ToggleScheduleDone(id string) (*model.Schedule, error) {
	all := s.Persistence.Schedules()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Completed = !all[i].Completed
		if err := s.Persistence.SaveSchedules(all); err != nil {
			return nil, err
		}
		return &all[i], nil
	}
	return nil, s.notFound("schedule", id)
}

// ReminderFields carries the reminder form inputs. Priority is not part of the
// form: reminders are created medium, a documented simplification.
type ReminderFields struct {
	Title       string
	Description string
	Date        string
	Time        string
	Type        model.ReminderType
}

// AddReminder validates the fields, assigns a fresh id, appends, and persists.
func (s *Service) AddReminder(f ReminderFields) (*model.Reminder, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	rem := model.Reminder{
		ID:          model.NewID("reminder"),
		Title:       f.Title,
		Description: f.Description,
		Date:        f.Date,
		Time:        f.Time,
		Type:        f.Type,
		Priority:    model.PriorityMedium,
	}
	if rem.Type == "" {
		rem.Type = model.TypeOther
	}
	if err := rem.Validate(); err != nil {
		s.Notifier.Error(err.Error())
		return nil, err
	}

	all := append(s.Persistence.Reminders(), rem)
	if err := s.Persistence.SaveReminders(all); err != nil {
		return nil, err
	}
	s.Notifier.Success("Reminder saved successfully!")
	return &rem, nil
}

// EditReminder replaces the record whose id matches, keeping id and priority.
func (s *Service) EditReminder(id string, f ReminderFields) (*model.Reminder, error) {
	if s.Persistence == nil {
		return nil, errors.New("app: no persistence configured")
	}
	all := s.Persistence.Reminders()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		next := model.Reminder{
			ID:          id,
			Title:       f.Title,
			Description: f.Description,
			Date:        f.Date,
			Time:        f.Time,
			Type:        f.Type,
			Priority:    all[i].Priority,
			Completed:   all[i].Completed,
		}
		if next.Type == "" {
			next.Type = all[i].Type
		}
		if err := next.Validate(); err != nil {
			s.Notifier.Error(err.Error())
			return nil, err
		}
		all[i] = next
		if err := s.Persistence.SaveReminders(all); err != nil {
			return nil, err
		}
		s.Notifier.Success("Reminder saved successfully!")
		return &next, nil
	}
	return nil, s.notFound("reminder", id)
}

// DeleteReminder removes the record by id.
func (s *Service) DeleteReminder(id string) error {
	if s.Persistence == nil {
		return errors.New("app: no persistence configured")
	}
	all := s.Persistence.Reminders()
	kept := all[:0]
	for _, rem := range all {
		if rem.ID != id {
			kept = append(kept, rem)
		}
	}
	if len(kept) == len(all) {
		return s.notFound("reminder", id)
	}
	if err := s.Persistence.SaveReminders(kept); err != nil {
		return err
	}
	s.Notifier.Success("Reminder deleted successfully!")
	return nil
}

// FindReminder looks a reminder up by id.
func (s *Service) FindReminder(id string) (*model.Reminder, error) {
	for _, rem := range s.Persistence.Reminders() {
		if rem.ID == id {
			return &rem, nil
		}
	}
	return nil, s.notFound("reminder", id)
}

// ToggleReminderDone flips the completed flag.
func (s *Service) ToggleReminderDone(id string) (*model.Reminder, error) {
	all := s.Persistence.Reminders()
	for i := range all {
		if all[i].ID != id {
			continue
		}
		all[i].Completed = !all[i].Completed
		if err := s.Persistence.SaveReminders(all); err != nil {
			return nil, err
		}
		return &all[i], nil
	}
	return nil, s.notFound("reminder", id)
}

// notFound logs the miss so a silent no-op never goes unexplained.
func (s *Service) notFound(kind, id string) error {
	fmt.Fprintf(os.Stderr, "app: %s %q not found\n", kind, id)
	return fmt.Errorf("%w: %s %s", model.ErrNotFound, kind, id)
}
