// Package timer holds the runners behind the timer subcommands. The
// countdown itself lives in pkg/timer's Engine; these runners bind it to the
// persisted snapshot and the terminal.
package timer

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/studysync/pkg/app"
	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/notify"
	"tableflip.dev/studysync/pkg/printers"
	engine "tableflip.dev/studysync/pkg/timer"
	"tableflip.dev/studysync/pkg/timeutil"
	timertui "tableflip.dev/studysync/pkg/tui/timer"
)

// Start runs the countdown in the foreground until it completes or the
// context is cancelled (Ctrl-C pauses and persists the remaining time).
type Start struct {
	Service  *app.Service
	Notifier notify.Notifier
}

func (s *Start) Do(ctx context.Context) error {
	p := s.Service.Persistence
	state := p.Timer()
	if state.Seconds == 0 {
		state = model.DefaultTimer()
	}

	n := s.Notifier
	if n == nil {
		n = notify.CLI{}
	}

	e := engine.New(state, p.SaveTimer, func() {
		n.Success("Timer complete! Time for a break.")
		notify.Bell()
	})
	s.Service.Timer = e

	done := e.Start(ctx)
	n.Success("Timer started!")
	_, _ = fmt.Fprintf(color.Output, "%s remaining\n", timeutil.Clock(e.Remaining()))

	<-done
	if ctx.Err() != nil {
		n.Info("Timer paused")
	}
	return nil
}

// Pause stops a persisted countdown snapshot without clearing it.
type Pause struct {
	Service *app.Service
}

func (pa *Pause) Do(ctx context.Context) error {
	p := pa.Service.Persistence
	state := p.Timer()
	state.Running = false
	if err := p.SaveTimer(state); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Timer(state)
	return nil
}

// Reset restores the 25 minute default.
type Reset struct {
	Service *app.Service
}

func (r *Reset) Do(ctx context.Context) error {
	state := model.DefaultTimer()
	if err := r.Service.Persistence.SaveTimer(state); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Timer(state)
	return nil
}

// Set stores a preset of the given minutes.
type Set struct {
	Minutes int

	Service *app.Service
}

func (s *Set) Do(ctx context.Context) error {
	if s.Minutes <= 0 {
		return &model.ValidationError{Field: "minutes", Reason: fmt.Sprintf("must be positive, got %d", s.Minutes)}
	}
	state := model.TimerState{Seconds: s.Minutes * 60}
	if err := s.Service.Persistence.SaveTimer(state); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Timer(state)
	return nil
}

// Watch opens the full-screen live countdown view.
type Watch struct {
	Service *app.Service
}

func (w *Watch) Do(ctx context.Context) error {
	p := w.Service.Persistence
	state := p.Timer()
	if state.Seconds == 0 {
		state = model.DefaultTimer()
	}

	e := engine.New(state, p.SaveTimer, func() {
		notify.Bell()
	})
	w.Service.Timer = e
	return timertui.Run(ctx, e)
}

// Status prints the persisted countdown snapshot.
type Status struct {
	Service *app.Service
}

func (st *Status) Do(ctx context.Context) error {
	pp := printers.PrettyPrint{}
	pp.Timer(st.Service.Persistence.Timer())
	return nil
}
