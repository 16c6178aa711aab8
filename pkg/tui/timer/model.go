// Package timer is the full-screen live countdown view.
package timer

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/studysync/pkg/model"
	engine "tableflip.dev/studysync/pkg/timer"
	"tableflip.dev/studysync/pkg/timeutil"
)

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#4361EE")).
			Padding(1, 4)

	statusStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(1)

	doneStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2EC27E")).
			MarginTop(1)

	helpStyle = lipgloss.NewStyle().
			Faint(true).
			MarginTop(2)
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model drives the countdown display. The engine does the actual ticking;
// the view only redraws once a second and forwards key presses.
type Model struct {
	engine *engine.Engine
	ctx    context.Context

	total     int
	progress  progress.Model
	width     int
	completed bool
	quitting  bool
}

// New builds the view over an engine holding the given snapshot.
func New(ctx context.Context, e *engine.Engine) *Model {
	total := e.Remaining()
	if total <= 0 {
		total = model.DefaultTimerSeconds
	}
	return &Model{
		engine:   e,
		ctx:      ctx,
		total:    total,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 8
		if w > 60 {
			w = 60
		}
		if w > 0 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			m.engine.Pause()
			return m, tea.Quit
		case "s", " ":
			m.completed = false
			if remaining := m.engine.Remaining(); remaining > 0 {
				m.total = remaining
			} else {
				m.total = model.DefaultTimerSeconds
			}
			m.engine.Start(m.ctx)
			return m, nil
		case "p":
			m.engine.Pause()
			return m, nil
		case "r":
			m.completed = false
			m.total = model.DefaultTimerSeconds
			m.engine.Reset()
			return m, nil
		}

	case tickMsg:
		if m.engine.Remaining() == 0 && !m.engine.Running() {
			m.completed = true
		}
		return m, tick()
	}

	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.engine.State()
	percent := 0.0
	if m.total > 0 {
		percent = 1 - float64(state.Seconds)/float64(m.total)
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 1 {
		percent = 1
	}

	clock := clockStyle.Render(timeutil.Clock(state.Seconds))
	bar := m.progress.ViewAs(percent)

	status := "paused"
	if state.Running {
		status = "running"
	}
	line := statusStyle.Render(status)
	if m.completed {
		line = doneStyle.Render("Timer complete! Time for a break.")
	}

	help := helpStyle.Render("s start · p pause · r reset · q quit")

	return fmt.Sprintf("\n  %s\n\n  %s\n  %s\n  %s\n", clock, bar, line, help)
}

// Run opens the view and blocks until the user quits.
func Run(ctx context.Context, e *engine.Engine) error {
	p := tea.NewProgram(New(ctx, e), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
