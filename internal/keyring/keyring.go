package keyring

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/logger"
	"clearday.dev/clearday/internal/storage"
)

var (
	// ErrNotFound is returned when no API key is found in the keyring
	ErrNotFound = errors.New("API key not found in keyring")
	// ErrKeyringUnavailable is returned when the OS keyring is not available
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// GetAPIKey retrieves the assist API key from the OS keyring.
// Returns ErrNotFound if no key is stored.
func GetAPIKey() (string, error) {
	key, err := keyring.Get(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return key, nil
}

// SetAPIKey stores the assist API key in the OS keyring.
func SetAPIKey(key string) error {
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	err := keyring.Set(constants.AppName, constants.DefaultKeyringUser, key)
	if err != nil {
		return fmt.Errorf("failed to store API key in keyring: %w", err)
	}
	return nil
}

// DeleteAPIKey removes the assist API key from the OS keyring.
func DeleteAPIKey() error {
	err := keyring.Delete(constants.AppName, constants.DefaultKeyringUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	return nil
}

// IsAvailable checks if the OS keyring is available on the current system.
// This is a best-effort check and may not catch all failure scenarios.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "test-availability")
	// ErrNotFound means the keyring is available but empty
	return err == nil || err == keyring.ErrNotFound
}

// MigrateFromStore moves an API key that older releases kept in the durable
// keyed store into the OS keyring, then scrubs the durable copy. A key
// already present in the keyring wins and the stale durable copy is removed
// without overwriting it.
func MigrateFromStore(store *storage.Store) {
	legacy := storage.Get(store, constants.KeyLegacyAPIKey, "")
	if legacy == "" {
		return
	}

	if _, err := GetAPIKey(); err == nil {
		store.Delete(constants.KeyLegacyAPIKey)
		return
	}

	if err := SetAPIKey(legacy); err != nil {
		logger.Warn("could not migrate API key to keyring", "error", err)
		return
	}
	store.Delete(constants.KeyLegacyAPIKey)
	logger.Info("migrated API key from durable store to OS keyring")
}
