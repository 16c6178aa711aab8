package timer

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/studysync/pkg/model"
	engine "tableflip.dev/studysync/pkg/timer"
)

type stubTicker struct {
	ch chan time.Time
}

func (s *stubTicker) C() <-chan time.Time { return s.ch }
func (s *stubTicker) Stop()               {}

func newTestModel(seconds int) *Model {
	e := engine.New(model.TimerState{Seconds: seconds}, nil, nil,
		engine.WithTickerFactory(func(time.Duration) engine.Ticker {
			return &stubTicker{ch: make(chan time.Time)}
		}))
	return New(context.Background(), e)
}

func TestViewShowsClock(t *testing.T) {
	m := newTestModel(1500)

	view := m.View()
	if !strings.Contains(view, "25:00") {
		t.Fatalf("expected clock in view, got %q", view)
	}
	if !strings.Contains(view, "paused") {
		t.Fatalf("expected paused status, got %q", view)
	}
}

func TestStartKeyBeginsRun(t *testing.T) {
	m := newTestModel(600)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(*Model)

	if !m.engine.Running() {
		t.Fatal("expected engine running after s")
	}
	if !strings.Contains(m.View(), "running") {
		t.Fatal("expected running status in view")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = next.(*Model)
	if m.engine.Running() {
		t.Fatal("expected engine paused after p")
	}
}

func TestResetKeyRestoresDefault(t *testing.T) {
	m := newTestModel(90)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	m = next.(*Model)

	if got := m.engine.Remaining(); got != model.DefaultTimerSeconds {
		t.Fatalf("expected default seconds after reset, got %d", got)
	}
}

func TestQuitKeyPausesEngine(t *testing.T) {
	m := newTestModel(600)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	m = next.(*Model)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = next.(*Model)

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if m.engine.Running() {
		t.Fatal("expected engine paused on quit")
	}
	if m.View() != "" {
		t.Fatal("expected empty view while quitting")
	}
}

func TestTickKeepsTicking(t *testing.T) {
	m := newTestModel(600)

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd == nil {
		t.Fatal("expected a follow-up tick command")
	}
}

func TestCompletionFlash(t *testing.T) {
	m := newTestModel(600)
	m.engine.Reset()
	if err := m.engine.SetPreset(1); err != nil {
		t.Fatalf("preset: %v", err)
	}
	// Drain the run down to zero by hand.
	m.completed = false
	forceZero(t, m)

	next, _ := m.Update(tickMsg(time.Now()))
	m = next.(*Model)
	if !m.completed {
		t.Fatal("expected completion flag once the engine hits zero idle")
	}
	if !strings.Contains(m.View(), "Timer complete") {
		t.Fatal("expected completion message in view")
	}
}

// forceZero runs an engine with a manual ticker down to zero.
func forceZero(t *testing.T, m *Model) {
	t.Helper()
	tick := make(chan time.Time)
	e := engine.New(model.TimerState{Seconds: 1}, nil, nil,
		engine.WithTickerFactory(func(time.Duration) engine.Ticker {
			return &stubTicker{ch: tick}
		}))
	done := e.Start(context.Background())
	tick <- time.Now()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("engine did not reach zero")
	}
	m.engine = e
}
