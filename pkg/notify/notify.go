// Package notify is the user-facing notification surface. Messages are
// fire-and-forget; nothing here returns an error to the caller.
package notify

import (
	"fmt"

	"github.com/fatih/color"
)

// Notifier receives operation outcome messages.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// CLI prints color-coded notifications to the terminal.
type CLI struct{}

func (CLI) Success(msg string) {
	g := color.New(color.FgGreen, color.Bold)
	_, _ = g.Fprint(color.Output, "✔ ")
	_, _ = fmt.Fprintln(color.Output, msg)
}

func (CLI) Error(msg string) {
	r := color.New(color.FgRed, color.Bold)
	_, _ = r.Fprint(color.Output, "✘ ")
	_, _ = fmt.Fprintln(color.Output, msg)
}

func (CLI) Info(msg string) {
	b := color.New(color.FgCyan)
	_, _ = b.Fprint(color.Output, "ℹ ")
	_, _ = fmt.Fprintln(color.Output, msg)
}

// Discard swallows all notifications; used by tests and the TUI, which draws
// status itself.
type Discard struct{}

func (Discard) Success(string) {}
func (Discard) Error(string)   {}
func (Discard) Info(string)    {}

// Bell plays the timer completion cue. Terminals without a bell just print
// nothing audible; failures are swallowed.
func Bell() {
	_, _ = fmt.Print("\a")
}
