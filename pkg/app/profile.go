package app

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"

	"tableflip.dev/studysync/pkg/model"
)

// MaxPictureBytes caps the profile picture at 5 MiB.
const MaxPictureBytes = 5 * 1024 * 1024

// UpdateProfile mutates the logged-in account's editable fields.
func (s *Service) UpdateProfile(name, email, studentID, major string) (*model.User, error) {
	u, err := s.CurrentUser()
	if err != nil {
		return nil, err
	}
	if name == "" || email == "" {
		verr := &model.ValidationError{Field: "profile", Reason: "name and email required"}
		s.Notifier.Error("Please fill in all required fields")
		return nil, verr
	}

	u.Name = name
	u.Email = email
	u.StudentID = studentID
	u.Major = major
	if err := s.Persistence.SaveUser(u); err != nil {
		return nil, err
	}
	s.Notifier.Success("Profile updated successfully!")
	return u, nil
}

// UploadProfilePicture reads the image at path and stores it as a base64 data
// URL on the account. Non-image content and files over 5 MiB are rejected
// before any state changes.
func (s *Service) UploadProfilePicture(path string) error {
	u, err := s.CurrentUser()
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		s.Notifier.Error("Error reading image file")
		return fmt.Errorf("app: read picture: %w", err)
	}
	if len(data) > MaxPictureBytes {
		verr := &model.ValidationError{Field: "picture", Reason: "image size should be less than 5MB"}
		s.Notifier.Error("Image size should be less than 5MB")
		return verr
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		verr := &model.ValidationError{Field: "picture", Reason: fmt.Sprintf("not an image: %s", mime)}
		s.Notifier.Error("Please select an image file")
		return verr
	}

	u.ProfilePicture = fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
	if err := s.Persistence.SaveUser(u); err != nil {
		return err
	}
	s.Notifier.Success("Profile picture updated successfully!")
	return nil
}

// RemoveProfilePicture clears the stored picture. Removing when none is set
// is not an error, just an informational notice.
func (s *Service) RemoveProfilePicture() error {
	u, err := s.CurrentUser()
	if err != nil {
		return err
	}
	if u.ProfilePicture == "" {
		s.Notifier.Info("No profile picture to remove")
		return nil
	}
	u.ProfilePicture = ""
	if err := s.Persistence.SaveUser(u); err != nil {
		return err
	}
	s.Notifier.Success("Profile picture removed")
	return nil
}
