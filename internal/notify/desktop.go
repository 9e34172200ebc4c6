package notify

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/go-ps"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/storage"
)

var (
	userConfigDirFunc = os.UserConfigDir
	findProcessFunc   = ps.FindProcess
)

// Desktop delivers notifications through the clearday tray companion's
// local webhook. The permission state persists in the keyed store so a
// one-time request survives restarts.
type Desktop struct {
	store *storage.Store
}

type webhookPayload struct {
	Title      string `json:"title"`
	Text       string `json:"text"`
	DurationMs uint32 `json:"duration_ms"`
}

func NewDesktop(store *storage.Store) *Desktop {
	return &Desktop{store: store}
}

func (d *Desktop) Permission() constants.PermissionState {
	state := storage.Get(d.store, constants.KeyNotifyState, string(constants.PermissionNotRequested))
	switch constants.PermissionState(state) {
	case constants.PermissionGranted, constants.PermissionDenied:
		return constants.PermissionState(state)
	default:
		return constants.PermissionNotRequested
	}
}

// Request probes the tray companion once and records the outcome. A denied
// answer is not re-asked automatically; the user can re-request from
// settings.
func (d *Desktop) Request() constants.PermissionState {
	state := constants.PermissionDenied
	if _, _, err := d.locateTray(); err == nil {
		state = constants.PermissionGranted
	}
	storage.Set(d.store, constants.KeyNotifyState, string(state))
	return state
}

func (d *Desktop) Notify(title, body string) error {
	if d.Permission() != constants.PermissionGranted {
		return ErrNotGranted
	}

	port, secret, err := d.locateTray()
	if err != nil {
		return err
	}

	payload := webhookPayload{
		Title:      title,
		Text:       body,
		DurationMs: constants.NotificationDurationMs,
	}
	return sendNotification(port, secret, payload)
}

func (d *Desktop) locateTray() (string, string, error) {
	trayConfigDir, err := trayAppConfigDir()
	if err != nil {
		return "", "", err
	}
	return findAndValidateTrayProcess(filepath.Join(trayConfigDir, constants.NotifierLockfileName))
}

// trayAppConfigDir returns the configuration directory used by the tray
// companion application.
func trayAppConfigDir() (string, error) {
	configDir, err := userConfigDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get user config dir: %w", err)
	}

	trayConfigDir := filepath.Join(configDir, constants.TrayAppIdentifier)

	// A settings.json may point at a custom lockfile dir.
	settingsPath := filepath.Join(trayConfigDir, "settings.json")
	if _, err := os.Stat(settingsPath); err == nil {
		data, err := os.ReadFile(settingsPath)
		if err == nil {
			var store struct {
				Settings struct {
					LockfileDir *string `json:"lockfile_dir"`
				} `json:"settings"`
			}
			if err := json.Unmarshal(data, &store); err == nil {
				if store.Settings.LockfileDir != nil && *store.Settings.LockfileDir != "" {
					return *store.Settings.LockfileDir, nil
				}
			}
		}
	}

	return trayConfigDir, nil
}

func findAndValidateTrayProcess(lockfilePath string) (string, string, error) {
	content, err := os.ReadFile(lockfilePath)
	if err != nil {
		return "", "", errors.New("clearday-tray is not running")
	}

	parts := strings.Split(strings.TrimSpace(string(content)), "|")
	if len(parts) != 3 {
		return "", "", errors.New("lockfile is malformed")
	}

	port := parts[0]
	if strings.TrimSpace(port) == "" {
		return "", "", errors.New("port in lockfile is empty")
	}
	portNum, err := strconv.Atoi(port)
	if err != nil {
		return "", "", errors.New("invalid port number in lockfile")
	}
	if portNum < 1 || portNum > 65535 {
		return "", "", fmt.Errorf("port number %d is outside valid range (1-65535)", portNum)
	}

	pid, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", "", errors.New("invalid process ID in lockfile")
	}
	secret := parts[2]
	if strings.TrimSpace(secret) == "" {
		return "", "", errors.New("secret in lockfile is empty")
	}

	process, err := findProcessFunc(pid)
	if err != nil || process == nil {
		return "", "", errors.New("clearday-tray process not running")
	}

	if !strings.HasPrefix(process.Executable(), "clearday-tray") {
		return "", "", fmt.Errorf("process with PID %d is not clearday-tray (is %s)", pid, process.Executable())
	}

	return port, secret, nil
}

func sendNotification(port string, secret string, payload webhookPayload) error {
	url := fmt.Sprintf("http://127.0.0.1:%s", port)

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Clearday-Secret", secret)

	client := &http.Client{}
	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	body, _ := io.ReadAll(res.Body)
	return fmt.Errorf("notification failed with status %d: %s", res.StatusCode, string(body))
}
