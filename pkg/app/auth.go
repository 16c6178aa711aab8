package app

import (
	"fmt"
	"math/rand"
	"strings"

	"tableflip.dev/studysync/pkg/model"
	"tableflip.dev/studysync/pkg/timeutil"
)

// Login checks the supplied credentials against the one locally stored
// account. On mismatch or when no account exists it bootstraps a fresh demo
// account with the supplied credentials and logs that in instead. This is a
// deliberate compatibility behavior, not a security check: there is no
// multi-account store and no real secret.
func (s *Service) Login(email, password string) (*model.User, error) {
	if email == "" || password == "" {
		err := &model.ValidationError{Field: "credentials", Reason: "email and password required"}
		s.Notifier.Error("Please enter both email and password")
		return nil, err
	}

	if u, ok := s.Persistence.User(); ok && u.Email == email && u.Password == password {
		if err := s.Persistence.SaveSession(model.Session{LoggedIn: true}); err != nil {
			return nil, err
		}
		s.Notifier.Success("Login successful!")
		return u, nil
	}

	u := &model.User{
		ID:        model.NewID("user"),
		Name:      "Demo Student",
		Email:     email,
		Password:  password,
		StudentID: newStudentID(),
		Major:     "Computer Science",
	}
	if err := s.Persistence.SaveUser(u); err != nil {
		return nil, err
	}
	if err := s.Persistence.SaveSession(model.Session{LoggedIn: true}); err != nil {
		return nil, err
	}
	s.Notifier.Success("Welcome to StudySync!")
	return u, nil
}

// Signup creates the local account, overwriting any existing one, and seeds
// the demo schedules and reminders.
func (s *Service) Signup(name, email, password, confirm string, termsAccepted bool) (*model.User, error) {
	if !termsAccepted {
		err := &model.ValidationError{Field: "terms", Reason: "must be accepted"}
		s.Notifier.Error("You must agree to the terms and conditions")
		return nil, err
	}
	if password != confirm {
		err := &model.ValidationError{Field: "password", Reason: "passwords do not match"}
		s.Notifier.Error("Passwords do not match")
		return nil, err
	}
	if name == "" || email == "" || password == "" {
		err := &model.ValidationError{Field: "signup", Reason: "name, email, and password required"}
		s.Notifier.Error("Please fill in all required fields")
		return nil, err
	}

	u := &model.User{
		ID:        model.NewID("user"),
		Name:      name,
		Email:     email,
		Password:  password,
		StudentID: newStudentID(),
	}
	if err := s.Persistence.SaveUser(u); err != nil {
		return nil, err
	}
	if err := s.Persistence.SaveSession(model.Session{LoggedIn: true}); err != nil {
		return nil, err
	}
	if err := s.seedDemoData(); err != nil {
		return nil, err
	}
	s.Notifier.Success("Account created successfully!")
	return u, nil
}

// Provider avatars mirror the placeholder images the simulated OAuth flow
// hands out per provider.
var providerAvatars = map[string]string{
	"Google":    "https://ui-avatars.com/api/?name=Google+User&background=DB4437&color=fff&size=150",
	"Facebook":  "https://ui-avatars.com/api/?name=Facebook+User&background=1877F2&color=fff&size=150",
	"GitHub":    "https://ui-avatars.com/api/?name=GitHub+User&background=333&color=fff&size=150",
	"Microsoft": "https://ui-avatars.com/api/?name=Microsoft+User&background=00A4EF&color=fff&size=150",
}

// SocialProviders lists the supported simulated OAuth providers.
func SocialProviders() []string {
	return []string{"google", "facebook", "github", "microsoft"}
}

func canonicalProvider(name string) (string, bool) {
	switch strings.ToLower(name) {
	case "google":
		return "Google", true
	case "facebook":
		return "Facebook", true
	case "github":
		return "GitHub", true
	case "microsoft":
		return "Microsoft", true
	}
	return "", false
}

// SocialBootstrap simulates an OAuth login for the named provider. It creates
// a deterministic demo account and routes through the same demo-data seeding
// as Signup. No network call is made.
func (s *Service) SocialBootstrap(provider string) (*model.User, error) {
	canonical, ok := canonicalProvider(provider)
	if !ok {
		err := &model.ValidationError{Field: "provider", Reason: fmt.Sprintf("unknown provider %q", provider)}
		s.Notifier.Error(err.Error())
		return nil, err
	}

	s.Notifier.Info(fmt.Sprintf("%s login would connect to %s OAuth in a real app", canonical, canonical))

	u := &model.User{
		ID:             model.NewID("user"),
		Name:           canonical + " User",
		Email:          strings.ToLower(canonical) + "user@example.com",
		Password:       "social_login_demo",
		StudentID:      newStudentID(),
		Major:          "Computer Science",
		ProfilePicture: providerAvatars[canonical],
	}
	if err := s.Persistence.SaveUser(u); err != nil {
		return nil, err
	}
	if err := s.Persistence.SaveSession(model.Session{LoggedIn: true}); err != nil {
		return nil, err
	}
	if err := s.seedDemoData(); err != nil {
		return nil, err
	}
	s.Notifier.Success(fmt.Sprintf("Signed in with %s successfully!", canonical))
	return u, nil
}

// Logout clears the session and stops the timer. The persisted account record
// remains until the next signup overwrites it.
func (s *Service) Logout() error {
	if s.Timer != nil {
		s.Timer.Pause()
	}
	if err := s.Persistence.SaveSession(model.Session{}); err != nil {
		return err
	}
	s.Notifier.Success("Logged out successfully")
	return nil
}

// CurrentUser returns the logged-in account, or ErrNotLoggedIn.
func (s *Service) CurrentUser() (*model.User, error) {
	if !s.Persistence.Session().LoggedIn {
		return nil, model.ErrNotLoggedIn
	}
	u, ok := s.Persistence.User()
	if !ok {
		return nil, model.ErrNotLoggedIn
	}
	return u, nil
}

// seedDemoData installs the fixed starter records: two schedules dated today
// and two reminders dated today and tomorrow.
func (s *Service) seedDemoData() error {
	today := timeutil.DateOf(s.now())
	tomorrow := timeutil.DateOf(s.now().AddDate(0, 0, 1))

	schedules := []model.Schedule{
		{
			ID:              model.NewID("schedule"),
			Title:           "Math Lecture",
			Description:     "Calculus II - Room 302",
			Date:            today,
			Time:            "09:00",
			DurationMinutes: 60,
			Priority:        model.PriorityHigh,
		},
		{
			ID:              model.NewID("schedule"),
			Title:           "Study Group",
			Description:     "Physics study session at library",
			Date:            today,
			Time:            "14:00",
			DurationMinutes: 90,
			Priority:        model.PriorityMedium,
		},
	}
	reminders := []model.Reminder{
		{
			ID:          model.NewID("reminder"),
			Title:       "Submit Math Assignment",
			Description: "Chapter 5 exercises due",
			Date:        today,
			Time:        "23:59",
			Type:        model.TypeAssignment,
			Priority:    model.PriorityHigh,
		},
		{
			ID:          model.NewID("reminder"),
			Title:       "Meet with Advisor",
			Description: "Discuss course selection",
			Date:        tomorrow,
			Time:        "15:30",
			Type:        model.TypeMeeting,
			Priority:    model.PriorityMedium,
		},
	}

	if err := s.Persistence.SaveSchedules(schedules); err != nil {
		return err
	}
	return s.Persistence.SaveReminders(reminders)
}

func newStudentID() string {
	return fmt.Sprintf("STU%d", 100000+rand.Intn(900000))
}
