package store

import (
	"os"
	"path/filepath"
	"testing"

	"tableflip.dev/studysync/pkg/model"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestDefaultsWhenNeverSet(t *testing.T) {
	p := load(t)

	if u, ok := p.User(); ok || u != nil {
		t.Fatalf("expected no user, got %+v", u)
	}
	if s := p.Schedules(); len(s) != 0 {
		t.Fatalf("expected empty schedules, got %d", len(s))
	}
	if r := p.Reminders(); len(r) != 0 {
		t.Fatalf("expected empty reminders, got %d", len(r))
	}
	if tm := p.Timer(); tm.Seconds != model.DefaultTimerSeconds || tm.Running {
		t.Fatalf("expected default timer, got %+v", tm)
	}
	if s := p.Session(); s.LoggedIn {
		t.Fatal("expected logged-out session")
	}
}

func TestRoundTrip(t *testing.T) {
	p := load(t)

	u := &model.User{ID: "user_1", Name: "Ann", Email: "ann@x.com", Password: "pw1", Major: "CS"}
	if err := p.SaveUser(u); err != nil {
		t.Fatalf("save user: %v", err)
	}
	got, ok := p.User()
	if !ok {
		t.Fatal("expected stored user")
	}
	if *got != *u {
		t.Fatalf("user round trip mismatch: %+v vs %+v", got, u)
	}

	schedules := []model.Schedule{{
		ID: "schedule_1", Title: "Math Lecture", Date: "2026-09-01", Time: "09:00",
		DurationMinutes: 60, Priority: model.PriorityHigh,
	}}
	if err := p.SaveSchedules(schedules); err != nil {
		t.Fatalf("save schedules: %v", err)
	}
	if got := p.Schedules(); len(got) != 1 || got[0] != schedules[0] {
		t.Fatalf("schedule round trip mismatch: %+v", got)
	}

	reminders := []model.Reminder{{
		ID: "reminder_1", Title: "Submit Assignment", Date: "2026-09-01", Time: "23:59",
		Type: model.TypeAssignment, Priority: model.PriorityMedium,
	}}
	if err := p.SaveReminders(reminders); err != nil {
		t.Fatalf("save reminders: %v", err)
	}
	if got := p.Reminders(); len(got) != 1 || got[0] != reminders[0] {
		t.Fatalf("reminder round trip mismatch: %+v", got)
	}

	if err := p.SaveSession(model.Session{LoggedIn: true}); err != nil {
		t.Fatalf("save session: %v", err)
	}
	if s := p.Session(); !s.LoggedIn {
		t.Fatal("expected logged-in session after save")
	}
}

func TestTimerComesBackPaused(t *testing.T) {
	p := load(t)

	if err := p.SaveTimer(model.TimerState{Seconds: 90, Running: true}); err != nil {
		t.Fatalf("save timer: %v", err)
	}
	tm := p.Timer()
	if tm.Seconds != 90 {
		t.Fatalf("expected 90 seconds, got %d", tm.Seconds)
	}
	if tm.Running {
		t.Fatal("a reloaded timer must not claim to be running")
	}
}

func TestCorruptRecordFallsBackToDefault(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, KeySchedules), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, KeyUser), []byte("]["), 0o644); err != nil {
		t.Fatalf("write corrupt record: %v", err)
	}

	if s := p.Schedules(); len(s) != 0 {
		t.Fatalf("expected default schedules for corrupt record, got %d", len(s))
	}
	if _, ok := p.User(); ok {
		t.Fatal("expected no user for corrupt record")
	}
}

func TestDeleteUser(t *testing.T) {
	p := load(t)

	if err := p.DeleteUser(); err != nil {
		t.Fatalf("delete absent user: %v", err)
	}
	if err := p.SaveUser(&model.User{ID: "user_1", Name: "Ann", Email: "ann@x.com"}); err != nil {
		t.Fatalf("save user: %v", err)
	}
	if err := p.DeleteUser(); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if _, ok := p.User(); ok {
		t.Fatal("expected user gone after delete")
	}
}
