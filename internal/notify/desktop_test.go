package notify

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	ps "github.com/mitchellh/go-ps"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/storage"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	backend, err := storage.NewDiskvBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	store := storage.NewStore(backend, storage.WithDebounce(time.Millisecond))
	t.Cleanup(func() { store.Close() })
	return store
}

func TestTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()
	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }

	expected := filepath.Join(tempDir, constants.TrayAppIdentifier)
	dir, err := trayAppConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != expected {
		t.Errorf("dir = %s, want %s", dir, expected)
	}

	// A settings.json overrides the lockfile dir.
	if err := os.MkdirAll(expected, 0755); err != nil {
		t.Fatal(err)
	}
	customDir := "/custom/clearday/dir"
	settingsJSON := fmt.Sprintf(`{"settings": {"lockfile_dir": "%s"}}`, customDir)
	if err := os.WriteFile(filepath.Join(expected, "settings.json"), []byte(settingsJSON), 0644); err != nil {
		t.Fatal(err)
	}

	dir, err = trayAppConfigDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != customDir {
		t.Errorf("dir = %s, want custom %s", dir, customDir)
	}
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		t.Helper()
		if err := os.WriteFile(lockfilePath, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Missing lockfile.
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for missing lockfile")
	}

	tests := []struct {
		name    string
		content string
	}{
		{"two-part format", "8080|12345"},
		{"garbage", "invalid"},
		{"empty port", "|12345|secret"},
		{"bad port", "notaport|12345|secret"},
		{"out-of-range port", "70000|12345|secret"},
		{"bad pid", "8080|notapid|secret"},
		{"empty secret", "8080|12345| "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			writeLockfile(tt.content)
			if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
				t.Error("expected error")
			}
		})
	}

	// Valid lockfile but no such process.
	writeLockfile("8080|12345|topsecret")
	findProcessFunc = func(pid int) (ps.Process, error) { return nil, nil }
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for dead process")
	}

	// Process exists but is not the tray app.
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "something-else"}, nil
	}
	if _, _, err := findAndValidateTrayProcess(lockfilePath); err == nil {
		t.Error("expected error for foreign process")
	}

	// The tray app is running.
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "clearday-tray"}, nil
	}
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	if err != nil {
		t.Fatal(err)
	}
	if port != "8080" || secret != "topsecret" {
		t.Errorf("port, secret = %s, %s", port, secret)
	}
}

func TestPermissionStateMachine(t *testing.T) {
	store := newTestStore(t)
	d := NewDesktop(store)

	if got := d.Permission(); got != constants.PermissionNotRequested {
		t.Errorf("initial permission = %s, want not-requested", got)
	}

	// With no tray companion the request lands on denied, durably.
	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) { return t.TempDir(), nil }

	if got := d.Request(); got != constants.PermissionDenied {
		t.Errorf("Request = %s, want denied", got)
	}
	if got := d.Permission(); got != constants.PermissionDenied {
		t.Errorf("persisted permission = %s, want denied", got)
	}
}

func TestNotifyRequiresGrant(t *testing.T) {
	store := newTestStore(t)
	d := NewDesktop(store)

	if err := d.Notify("title", "body"); err != ErrNotGranted {
		t.Errorf("err = %v, want ErrNotGranted", err)
	}
}
