package interaction

import (
	"sync"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/logger"
	"clearday.dev/clearday/internal/notify"
)

const (
	reminderTitle = "Sobriety Check-In"
	reminderBody  = "It's been a while. How are you feeling today?"
)

// Tracker watches user activity and schedules a single inactivity reminder.
// Every interaction rearms the timer, so at most one reminder is pending at
// any moment and it only fires after a full quiet period.
type Tracker struct {
	mu        sync.Mutex
	notifier  notify.Notifier
	delay     time.Duration
	timer     *time.Timer
	last      time.Time
	requested bool
	afterFunc func(time.Duration, func()) *time.Timer
}

func NewTracker(notifier notify.Notifier) *Tracker {
	return &Tracker{
		notifier:  notifier,
		delay:     constants.ReminderDelay,
		afterFunc: time.AfterFunc,
	}
}

// WithDelay overrides the quiet period. Used by tests.
func (t *Tracker) WithDelay(d time.Duration) *Tracker {
	t.delay = d
	return t
}

// Touch records an interaction and rearms the reminder. The first touch also
// asks for notification permission if it has never been requested; a denied
// answer is respected and never re-asked here.
func (t *Tracker) Touch(now time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.last = now

	if !t.requested {
		t.requested = true
		if t.notifier.Permission() == constants.PermissionNotRequested {
			t.notifier.Request()
		}
	}

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = t.afterFunc(t.delay, t.remind)
}

// LastInteraction returns the time of the most recent touch.
func (t *Tracker) LastInteraction() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}

// Close cancels any pending reminder.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

func (t *Tracker) remind() {
	if err := t.notifier.Notify(reminderTitle, reminderBody); err != nil {
		logger.Debug("inactivity reminder not delivered", "error", err)
	}
}
