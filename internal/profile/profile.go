package profile

import (
	"errors"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/storage"
)

// ErrFutureDate is returned when a sobriety start date lies in the future.
var ErrFutureDate = errors.New("sobriety date cannot be in the future")

// Manager owns the user's identity and streak state on top of the keyed
// store. All mutations update the store synchronously (in memory) and rely
// on its debounced persistence.
type Manager struct {
	store *storage.Store
	now   func() time.Time
}

func NewManager(store *storage.Store) *Manager {
	return &Manager{store: store, now: time.Now}
}

// WithClock overrides the time source. Used by tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

func (m *Manager) Name() string {
	return storage.Get(m.store, constants.KeyUserName, "")
}

func (m *Manager) SetName(name string) {
	storage.Set(m.store, constants.KeyUserName, name)
}

// SobrietyDate returns the explicit start date, if one is set.
func (m *Manager) SobrietyDate() (time.Time, bool) {
	raw := storage.Get(m.store, constants.KeySobrietyDate, "")
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(constants.DateFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// SetSobrietyDate records an explicit start date. Future dates are rejected
// at the point of assignment; nothing is mutated on failure.
func (m *Manager) SetSobrietyDate(d time.Time) error {
	now := m.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	candidate := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, now.Location())
	if candidate.After(today) {
		return ErrFutureDate
	}
	storage.Set(m.store, constants.KeySobrietyDate, candidate.Format(constants.DateFormat))
	return nil
}

func (m *Manager) ClearSobrietyDate() {
	m.store.Delete(constants.KeySobrietyDate)
}

func (m *Manager) Streak() int {
	return storage.Get(m.store, constants.KeyStreak, 0)
}

func (m *Manager) Achievements() []string {
	return storage.Get(m.store, constants.KeyAchievements, []string{})
}

func (m *Manager) PositiveChoices() int {
	return storage.Get(m.store, constants.KeyPositiveChoices, 0)
}

// RecordPositiveChoice bumps the monotonic engagement counter.
func (m *Manager) RecordPositiveChoice() int {
	n := m.PositiveChoices() + 1
	storage.Set(m.store, constants.KeyPositiveChoices, n)
	return n
}

func (m *Manager) CustomGoals() []string {
	return storage.Get(m.store, constants.KeyCustomGoals, []string{})
}

func (m *Manager) AddCustomGoal(goal string) {
	goals := append(m.CustomGoals(), goal)
	storage.Set(m.store, constants.KeyCustomGoals, goals)
}

// SobrietyDays returns the day count shown to the user. An explicit start
// date is authoritative for display when present; otherwise the check-in
// streak stands in. Computed fresh on every call, never cached.
func (m *Manager) SobrietyDays() int {
	start, ok := m.SobrietyDate()
	if !ok {
		return m.Streak()
	}
	return SobrietyDays(m.now(), start)
}

// lastCheck returns the recorded last evaluation date at date precision.
func (m *Manager) lastCheck() (time.Time, bool) {
	raw := storage.Get(m.store, constants.KeyLastCheckDate, "")
	if raw == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation(constants.DateFormat, raw, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// Checkin evaluates the streak transition for the current activation and
// returns the milestone unlocked by it, if any. Safe to call on every app
// start: a second evaluation on the same day is a no-op.
//
// Milestone lookup runs after any streak change, including a reset to 1; the
// achievements set only grows, so re-landing on an already-unlocked
// threshold changes nothing.
func (m *Manager) Checkin() *models.Milestone {
	now := m.now()
	last, hasLast := m.lastCheck()

	res := EvaluateCheckin(now, last, hasLast, m.Streak())
	if !res.Changed {
		return nil
	}

	storage.Set(m.store, constants.KeyStreak, res.Streak)
	storage.Set(m.store, constants.KeyLastCheckDate, now.Format(constants.DateFormat))

	return m.unlockMilestone(res.Streak)
}

// unlockMilestone appends the badge for an exact day-count match, preserving
// unlock order and never duplicating a badge.
func (m *Manager) unlockMilestone(streak int) *models.Milestone {
	milestone, ok := MilestoneForDay(streak)
	if !ok {
		return nil
	}
	badges := m.Achievements()
	for _, b := range badges {
		if b == milestone.Badge {
			return nil
		}
	}
	storage.Set(m.store, constants.KeyAchievements, append(badges, milestone.Badge))
	return &milestone
}
