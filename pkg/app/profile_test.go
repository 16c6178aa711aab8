package app

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tableflip.dev/studysync/pkg/model"
)

// pngHeader is enough of a real PNG for content sniffing.
var pngHeader = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13, 'I', 'H', 'D', 'R'}

func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestUploadProfilePicture(t *testing.T) {
	svc, mp := newTestService()
	if _, err := svc.Signup("Ann", "ann@x.com", "pw1", "pw1", true); err != nil {
		t.Fatalf("signup: %v", err)
	}

	path := writeTempFile(t, "avatar.png", pngHeader)
	if err := svc.UploadProfilePicture(path); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if !strings.HasPrefix(mp.user.ProfilePicture, "data:image/png;base64,") {
		t.Fatalf("expected data url, got %q", mp.user.ProfilePicture)
	}
}

func TestUploadProfilePictureRejectsNonImage(t *testing.T) {
	svc, mp := newTestService()
	if _, err := svc.Signup("Ann", "ann@x.com", "pw1", "pw1", true); err != nil {
		t.Fatalf("signup: %v", err)
	}

	path := writeTempFile(t, "notes.txt", []byte("just some text"))
	if err := svc.UploadProfilePicture(path); !model.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if mp.user.ProfilePicture != "" {
		t.Fatal("rejected upload must not mutate the account")
	}
}

func TestUploadProfilePictureRejectsOversized(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Signup("Ann", "ann@x.com", "pw1", "pw1", true); err != nil {
		t.Fatalf("signup: %v", err)
	}

	big := append(append([]byte(nil), pngHeader...), bytes.Repeat([]byte{0}, MaxPictureBytes)...)
	path := writeTempFile(t, "huge.png", big)
	if err := svc.UploadProfilePicture(path); !model.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestRemoveProfilePicture(t *testing.T) {
	svc, mp := newTestService()
	if _, err := svc.Signup("Ann", "ann@x.com", "pw1", "pw1", true); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Removing with nothing set is informational, not an error.
	if err := svc.RemoveProfilePicture(); err != nil {
		t.Fatalf("remove absent picture: %v", err)
	}

	path := writeTempFile(t, "avatar.png", pngHeader)
	if err := svc.UploadProfilePicture(path); err != nil {
		t.Fatalf("upload: %v", err)
	}
	if err := svc.RemoveProfilePicture(); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if mp.user.ProfilePicture != "" {
		t.Fatal("expected picture cleared")
	}
}
