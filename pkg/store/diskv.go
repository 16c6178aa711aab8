package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/studysync/pkg/model"
)

// The five logical records, each stored under its own key. A crash between
// saves can leave them mutually inconsistent; that is accepted.
const (
	KeyUser      = "user"
	KeySchedules = "schedules"
	KeyReminders = "reminders"
	KeyTimer     = "timer"
	KeySession   = "session"
)

// Persistence is the storage port for the application state. Reads fail soft:
// a missing or unparseable record yields its default, never an error.
type Persistence interface {
	User() (*model.User, bool)
	SaveUser(u *model.User) error
	DeleteUser() error

	Schedules() []model.Schedule
	SaveSchedules(s []model.Schedule) error

	Reminders() []model.Reminder
	SaveReminders(r []model.Reminder) error

	Timer() model.TimerState
	SaveTimer(t model.TimerState) error

	Session() model.Session
	SaveSession(s model.Session) error

	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// read unmarshals the record under key into target. It returns false when the
// key is absent or the stored bytes do not parse; the parse failure is logged
// and the caller keeps its default so a corrupt record cannot take the
// application down.
func (p *persistence) read(key string, target interface{}) bool {
	if !p.d.Has(key) {
		return false
	}
	val, err := p.d.Read(key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %s\n", key, err)
		return false
	}
	if err := json.Unmarshal(val, target); err != nil {
		fmt.Fprintf(os.Stderr, "store: corrupt %s record, using defaults: %s\n", key, err)
		return false
	}
	return true
}

func (p *persistence) write(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) User() (*model.User, bool) {
	u := &model.User{}
	if !p.read(KeyUser, u) || u.ID == "" {
		return nil, false
	}
	return u, true
}

func (p *persistence) SaveUser(u *model.User) error {
	return p.write(KeyUser, u)
}

func (p *persistence) DeleteUser() error {
	if !p.d.Has(KeyUser) {
		return nil
	}
	if err := p.d.Erase(KeyUser); err != nil {
		return fmt.Errorf("store: erase %s: %w", KeyUser, err)
	}
	return nil
}

func (p *persistence) Schedules() []model.Schedule {
	s := make([]model.Schedule, 0)
	p.read(KeySchedules, &s)
	return s
}

func (p *persistence) SaveSchedules(s []model.Schedule) error {
	if s == nil {
		s = make([]model.Schedule, 0)
	}
	return p.write(KeySchedules, s)
}

func (p *persistence) Reminders() []model.Reminder {
	r := make([]model.Reminder, 0)
	p.read(KeyReminders, &r)
	return r
}

func (p *persistence) SaveReminders(r []model.Reminder) error {
	if r == nil {
		r = make([]model.Reminder, 0)
	}
	return p.write(KeyReminders, r)
}

func (p *persistence) Timer() model.TimerState {
	t := model.DefaultTimer()
	if p.read(KeyTimer, &t) && t.Seconds < 0 {
		t.Seconds = 0
	}
	// No tick source survives a process exit, so a state persisted mid-run
	// comes back paused.
	t.Running = false
	return t
}

func (p *persistence) SaveTimer(t model.TimerState) error {
	return p.write(KeyTimer, t)
}

func (p *persistence) Session() model.Session {
	s := model.Session{}
	p.read(KeySession, &s)
	return s
}

func (p *persistence) SaveSession(s model.Session) error {
	return p.write(KeySession, s)
}
