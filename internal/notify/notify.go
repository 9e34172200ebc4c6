package notify

import (
	"errors"

	"clearday.dev/clearday/internal/constants"
)

// ErrNotGranted is returned by Notify when permission has not been granted.
var ErrNotGranted = errors.New("notification permission not granted")

// Notifier is the injected notification capability. Core logic that only
// needs to "emit an alert" depends on this interface and never on platform
// specifics.
//
// Permission follows the {not-requested, granted, denied} state machine:
// Request is asked at most opportunistically (after the first user
// interaction) and its answer sticks.
type Notifier interface {
	Permission() constants.PermissionState
	Request() constants.PermissionState
	Notify(title, body string) error
}
