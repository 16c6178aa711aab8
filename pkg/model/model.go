package model

import (
	"fmt"

	"github.com/google/uuid"

	"tableflip.dev/studysync/pkg/timeutil"
)

// Priority ranks schedules and reminders.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (p Priority) String() string {
	return string(p)
}

// Priorities lists the priority levels from most to least urgent.
func Priorities() []Priority {
	return []Priority{PriorityHigh, PriorityMedium, PriorityLow}
}

// ReminderType categorizes a reminder.
type ReminderType string

const (
	TypeAssignment ReminderType = "assignment"
	TypeExam       ReminderType = "exam"
	TypeMeeting    ReminderType = "meeting"
	TypePersonal   ReminderType = "personal"
	TypeOther      ReminderType = "other"
)

func (t ReminderType) Valid() bool {
	switch t {
	case TypeAssignment, TypeExam, TypeMeeting, TypePersonal, TypeOther:
		return true
	}
	return false
}

func (t ReminderType) String() string {
	return string(t)
}

// User is the single local account. The password is stored in the clear: there
// is no server and no real secret here, the auth flow only simulates login.
type User struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	StudentID      string `json:"studentId,omitempty"`
	Major          string `json:"major,omitempty"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Schedule is a dated, timed study or class event.
type Schedule struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"` // YYYY-MM-DD
	Time            string   `json:"time"` // HH:MM, 24 hour
	DurationMinutes int      `json:"duration"`
	Priority        Priority `json:"priority"`
	Completed       bool     `json:"completed,omitempty"`
}

// DefaultDurationMinutes is assumed when a schedule does not set its own.
const DefaultDurationMinutes = 60

// Validate checks the fields a schedule form requires.
func (s *Schedule) Validate() error {
	if s.Title == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if _, err := timeutil.ParseDate(s.Date); err != nil {
		return &ValidationError{Field: "date", Reason: fmt.Sprintf("want YYYY-MM-DD, got %q", s.Date)}
	}
	if _, err := timeutil.ParseClock(s.Time); err != nil {
		return &ValidationError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", s.Time)}
	}
	if s.DurationMinutes < 0 {
		return &ValidationError{Field: "duration", Reason: "must not be negative"}
	}
	if !s.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", s.Priority)}
	}
	return nil
}

// Reminder is a dated, timed task or notice with a category type.
type Reminder struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Date        string       `json:"date"`
	Time        string       `json:"time"`
	Type        ReminderType `json:"type"`
	Priority    Priority     `json:"priority"`
	Completed   bool         `json:"completed,omitempty"`
}

// Validate checks the fields a reminder form requires.
func (r *Reminder) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Reason: "required"}
	}
	if _, err := timeutil.ParseDate(r.Date); err != nil {
		return &ValidationError{Field: "date", Reason: fmt.Sprintf("want YYYY-MM-DD, got %q", r.Date)}
	}
	if _, err := timeutil.ParseClock(r.Time); err != nil {
		return &ValidationError{Field: "time", Reason: fmt.Sprintf("want HH:MM, got %q", r.Time)}
	}
	if !r.Type.Valid() {
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown type %q", r.Type)}
	}
	if !r.Priority.Valid() {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("unknown priority %q", r.Priority)}
	}
	return nil
}

// DefaultTimerSeconds is the 25 minute pomodoro the timer resets to.
const DefaultTimerSeconds = 25 * 60

// TimerState is the persisted countdown snapshot.
type TimerState struct {
	Seconds int  `json:"seconds"`
	Running bool `json:"running"`
}

// DefaultTimer returns a fresh, stopped 25 minute timer.
func DefaultTimer() TimerState {
	return TimerState{Seconds: DefaultTimerSeconds}
}

// Session records whether the local account is logged in between invocations.
type Session struct {
	LoggedIn bool `json:"loggedIn"`
}

// NewID returns a collision-safe record id like "schedule_4cc2...".
func NewID(prefix string) string {
	return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
}
