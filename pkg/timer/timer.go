// Package timer implements the study countdown as a small state machine:
// idle/paused or running, with a momentary completed transition back to idle.
// The tick source is injectable so tests can drive it by hand.
package timer

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"tableflip.dev/studysync/pkg/model"
)

// Ticker is the engine's once-per-second tick source.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory builds the tick source for one run.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func (r *realTicker) C() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()               { r.t.Stop() }

func newRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

// SaveFunc persists a timer snapshot. Saves are best effort; failures are
// logged, never fatal.
type SaveFunc func(model.TimerState) error

// Engine drives the countdown. At most one tick source is active at a time;
// starting a running engine is a no-op and must not spawn a second source.
type Engine struct {
	mu         sync.Mutex
	state      model.TimerState
	stop       chan struct{}
	done       chan struct{}
	newTicker  TickerFactory
	save       SaveFunc
	onComplete func()
}

// Option adjusts an Engine at construction.
type Option func(*Engine)

// WithTickerFactory substitutes the tick source, for tests.
func WithTickerFactory(f TickerFactory) Option {
	return func(e *Engine) { e.newTicker = f }
}

// New builds an engine over the given snapshot. save may be nil; onComplete
// fires exactly once per run that reaches zero.
func New(initial model.TimerState, save SaveFunc, onComplete func(), opts ...Option) *Engine {
	if initial.Seconds < 0 {
		initial.Seconds = 0
	}
	// A freshly constructed engine has no tick source yet, whatever the
	// snapshot claims.
	initial.Running = false
	e := &Engine{
		state:      initial,
		newTicker:  newRealTicker,
		save:       save,
		onComplete: onComplete,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current snapshot.
func (e *Engine) State() model.TimerState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Remaining returns the seconds left.
func (e *Engine) Remaining() int {
	return e.State().Seconds
}

// Running reports whether a tick source is active.
func (e *Engine) Running() bool {
	return e.State().Running
}

// Start begins the countdown and returns a channel that closes when this run
// stops, whether by completion, pause, reset, or ctx cancellation. Calling
// Start while running is a no-op that returns the active run's channel.
func (e *Engine) Start(ctx context.Context) <-chan struct{} {
	e.mu.Lock()
	if e.state.Running {
		done := e.done
		e.mu.Unlock()
		return done
	}
	if e.state.Seconds <= 0 {
		e.state.Seconds = model.DefaultTimerSeconds
	}
	e.state.Running = true
	e.stop = make(chan struct{})
	e.done = make(chan struct{})
	stop, done := e.stop, e.done
	tick := e.newTicker(time.Second)
	e.mu.Unlock()

	e.persist()

	go e.run(ctx, tick, stop, done)
	return done
}

func (e *Engine) run(ctx context.Context, tick Ticker, stop, done chan struct{}) {
	defer close(done)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			e.mu.Lock()
			e.state.Running = false
			e.mu.Unlock()
			e.persist()
			return
		case <-stop:
			return
		case <-tick.C():
			e.mu.Lock()
			if !e.state.Running {
				// Paused between the tick firing and us taking the lock.
				e.mu.Unlock()
				return
			}
			e.state.Seconds--
			if e.state.Seconds <= 0 {
				e.state.Seconds = 0
				e.state.Running = false
				e.mu.Unlock()
				e.persist()
				if e.onComplete != nil {
					e.onComplete()
				}
				return
			}
			e.mu.Unlock()
			e.persist()
		}
	}
}

// Pause stops the countdown without touching the remaining seconds. No-op
// when idle.
func (e *Engine) Pause() {
	e.mu.Lock()
	if !e.state.Running {
		e.mu.Unlock()
		return
	}
	e.state.Running = false
	close(e.stop)
	e.mu.Unlock()
	e.persist()
}

// Reset stops the countdown and restores the 25 minute default.
func (e *Engine) Reset() {
	e.mu.Lock()
	if e.state.Running {
		close(e.stop)
	}
	e.state.Running = false
	e.state.Seconds = model.DefaultTimerSeconds
	e.mu.Unlock()
	e.persist()
}

// SetPreset stops the countdown and sets it to the given number of minutes.
func (e *Engine) SetPreset(minutes int) error {
	if minutes <= 0 {
		return &model.ValidationError{Field: "minutes", Reason: fmt.Sprintf("must be positive, got %d", minutes)}
	}
	e.mu.Lock()
	if e.state.Running {
		close(e.stop)
	}
	e.state.Running = false
	e.state.Seconds = minutes * 60
	e.mu.Unlock()
	e.persist()
	return nil
}

func (e *Engine) persist() {
	if e.save == nil {
		return
	}
	if err := e.save(e.State()); err != nil {
		fmt.Fprintf(os.Stderr, "timer: save state: %v\n", err)
	}
}
