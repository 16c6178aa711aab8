package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/store"
)

// memoryPersistence is an in-memory store.Persistence for tests.
type memoryPersistence struct {
	user      *model.User
	schedules []model.Schedule
	reminders []model.Reminder
	timer     model.TimerState
	session   model.Session
	hasTimer  bool
}

func newMemoryPersistence() *memoryPersistence {
	return &memoryPersistence{}
}

func (m *memoryPersistence) User() (*model.User, bool) {
	if m.user == nil {
		return nil, false
	}
	cp := *m.user
	return &cp, true
}

func (m *memoryPersistence) SaveUser(u *model.User) error {
	cp := *u
	m.user = &cp
	return nil
}

func (m *memoryPersistence) DeleteUser() error {
	m.user = nil
	return nil
}

func (m *memoryPersistence) Schedules() []model.Schedule {
	return append([]model.Schedule(nil), m.schedules...)
}

func (m *memoryPersistence) SaveSchedules(s []model.Schedule) error {
	m.schedules = append([]model.Schedule(nil), s...)
	return nil
}

func (m *memoryPersistence) Reminders() []model.Reminder {
	return append([]model.Reminder(nil), m.reminders...)
}

func (m *memoryPersistence) SaveReminders(r []model.Reminder) error {
	m.reminders = append([]model.Reminder(nil), r...)
	return nil
}

func (m *memoryPersistence) Timer() model.TimerState {
	if !m.hasTimer {
		return model.DefaultTimer()
	}
	t := m.timer
	t.Running = false
	return t
}

func (m *memoryPersistence) SaveTimer(t model.TimerState) error {
	m.timer = t
	m.hasTimer = true
	return nil
}

func (m *memoryPersistence) Session() model.Session {
	return m.session
}

func (m *memoryPersistence) SaveSession(s model.Session) error {
	m.session = s
	return nil
}

func (m *memoryPersistence) Watch(context.Context) (<-chan store.Event, error) {
	return nil, nil
}

func newTestService() (*Service, *memoryPersistence) {
	mp := newMemoryPersistence()
	svc := New(mp, nil)
	svc.Now = func() time.Time {
		return time.Date(2026, time.September, 1, 10, 0, 0, 0, time.UTC)
	}
	return svc, mp
}

func TestAddScheduleAssignsID(t *testing.T) {
	svc, mp := newTestService()

	sched, err := svc.AddSchedule(ScheduleFields{Title: "Math", Date: "2026-09-01", Time: "09:00"})
	if err != nil {
		t.Fatalf("add schedule: %v", err)
	}
	if sched.ID == "" {
		t.Fatal("expected generated id")
	}
	if sched.DurationMinutes != model.DefaultDurationMinutes {
		t.Fatalf("expected default duration, got %d", sched.DurationMinutes)
	}
	if sched.Priority != model.PriorityMedium {
		t.Fatalf("expected defaulted priority, got %s", sched.Priority)
	}

	got, err := svc.FindSchedule(sched.ID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if *got != *sched {
		t.Fatalf("stored record differs: %+v vs %+v", got, sched)
	}
	if len(mp.schedules) != 1 {
		t.Fatalf("expected 1 persisted schedule, got %d", len(mp.schedules))
	}
}

func TestAddScheduleIDsNeverCollide(t *testing.T) {
	svc, _ := newTestService()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		sched, err := svc.AddSchedule(ScheduleFields{Title: "x", Date: "2026-09-01", Time: "09:00"})
		if err != nil {
			t.Fatalf("add schedule: %v", err)
		}
		if seen[sched.ID] {
			t.Fatalf("id collision: %s", sched.ID)
		}
		seen[sched.ID] = true
	}
}

func TestAddScheduleValidation(t *testing.T) {
	svc, mp := newTestService()

	tests := []struct {
		name   string
		fields ScheduleFields
	}{
		{"missing title", ScheduleFields{Date: "2026-09-01", Time: "09:00"}},
		{"missing date", ScheduleFields{Title: "x", Time: "09:00"}},
		{"bad date", ScheduleFields{Title: "x", Date: "tomorrow", Time: "09:00"}},
		{"missing time", ScheduleFields{Title: "x", Date: "2026-09-01"}},
		{"bad time", ScheduleFields{Title: "x", Date: "2026-09-01", Time: "9am"}},
		{"bad priority", ScheduleFields{Title: "x", Date: "2026-09-01", Time: "09:00", Priority: "urgent"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.AddSchedule(tc.fields); !model.IsValidation(err) {
				t.Fatalf("expected validation error, got %v", err)
			}
			if len(mp.schedules) != 0 {
				t.Fatal("rejected input must not mutate state")
			}
		})
	}
}

func TestEditScheduleReplacesExactlyOne(t *testing.T) {
	svc, mp := newTestService()

	first, _ := svc.AddSchedule(ScheduleFields{Title: "Math", Date: "2026-09-01", Time: "09:00"})
	second, _ := svc.AddSchedule(ScheduleFields{Title: "Physics", Date: "2026-09-02", Time: "11:00"})

	got, err := svc.EditSchedule(first.ID, ScheduleFields{Title: "Math II", Date: "2026-09-01", Time: "10:00", Priority: model.PriorityHigh})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if got.ID != first.ID || got.Title != "Math II" || got.Time != "10:00" {
		t.Fatalf("unexpected edit result: %+v", got)
	}
	if len(mp.schedules) != 2 {
		t.Fatalf("edit must not change collection length, got %d", len(mp.schedules))
	}
	if other, _ := svc.FindSchedule(second.ID); other.Title != "Physics" {
		t.Fatalf("edit touched the wrong record: %+v", other)
	}
}

func TestEditScheduleNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.EditSchedule("schedule_missing", ScheduleFields{Title: "x", Date: "2026-09-01", Time: "09:00"})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteSchedule(t *testing.T) {
	svc, mp := newTestService()

	sched, _ := svc.AddSchedule(ScheduleFields{Title: "Math", Date: "2026-09-01", Time: "09:00"})
	svc.AddSchedule(ScheduleFields{Title: "Physics", Date: "2026-09-02", Time: "11:00"})

	if err := svc.DeleteSchedule(sched.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(mp.schedules) != 1 {
		t.Fatalf("expected 1 schedule after delete, got %d", len(mp.schedules))
	}

	if err := svc.DeleteSchedule(sched.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for absent id, got %v", err)
	}
	if len(mp.schedules) != 1 {
		t.Fatal("absent delete must not change the collection")
	}
}

func TestAddReminderForcesMediumPriority(t *testing.T) {
	svc, _ := newTestService()

	rem, err := svc.AddReminder(ReminderFields{Title: "Essay", Date: "2026-09-05", Time: "17:00", Type: model.TypeAssignment})
	if err != nil {
		t.Fatalf("add reminder: %v", err)
	}
	if rem.Priority != model.PriorityMedium {
		t.Fatalf("reminders are created medium, got %s", rem.Priority)
	}
}

func TestEditReminderKeepsPriority(t *testing.T) {
	svc, _ := newTestService()

	rem, _ := svc.AddReminder(ReminderFields{Title: "Essay", Date: "2026-09-05", Time: "17:00", Type: model.TypeAssignment})

	got, err := svc.EditReminder(rem.ID, ReminderFields{Title: "Essay draft", Date: "2026-09-06", Time: "17:00", Type: model.TypeAssignment})
	if err != nil {
		t.Fatalf("edit reminder: %v", err)
	}
	if got.Priority != model.PriorityMedium {
		t.Fatalf("edit must keep priority, got %s", got.Priority)
	}
	if got.Date != "2026-09-06" {
		t.Fatalf("edit did not apply: %+v", got)
	}
}

func TestDeleteReminder(t *testing.T) {
	svc, mp := newTestService()

	rem, _ := svc.AddReminder(ReminderFields{Title: "Essay", Date: "2026-09-05", Time: "17:00", Type: model.TypeAssignment})
	if err := svc.DeleteReminder(rem.ID); err != nil {
		t.Fatalf("delete reminder: %v", err)
	}
	if len(mp.reminders) != 0 {
		t.Fatalf("expected empty reminders, got %d", len(mp.reminders))
	}
	if err := svc.DeleteReminder("reminder_missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestToggleDone(t *testing.T) {
	svc, _ := newTestService()

	sched, _ := svc.AddSchedule(ScheduleFields{Title: "Math", Date: "2026-09-01", Time: "09:00"})
	got, err := svc.ToggleScheduleDone(sched.ID)
	if err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !got.Completed {
		t.Fatal("expected completed after toggle")
	}
	got, _ = svc.ToggleScheduleDone(sched.ID)
	if got.Completed {
		t.Fatal("expected not completed after second toggle")
	}

	rem, _ := svc.AddReminder(ReminderFields{Title: "Essay", Date: "2026-09-05", Time: "17:00", Type: model.TypeAssignment})
	r, err := svc.ToggleReminderDone(rem.ID)
	if err != nil {
		t.Fatalf("toggle reminder: %v", err)
	}
	if !r.Completed {
		t.Fatal("expected completed reminder")
	}
}
