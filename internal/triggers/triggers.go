package triggers

import (
	"errors"
	"strings"
	"sync"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/storage"
)

// ErrEmptyName is returned when a trigger's name trims to nothing.
var ErrEmptyName = errors.New("trigger name cannot be empty")

// Store is the append-only trigger collection, newest first.
//
// Intensity is not range-checked here; the input surface constrains it to
// [1,9] and the store accepts whatever integer it is handed.
type Store struct {
	mu    sync.Mutex
	store *storage.Store
	items []models.Trigger
	now   func() time.Time
}

func NewStore(store *storage.Store) *Store {
	s := &Store{
		store: store,
		now:   time.Now,
	}
	s.items = storage.Get(store, constants.KeyTriggers, []models.Trigger{})
	return s
}

// WithClock overrides the time source. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Add validates and prepends a new trigger. An empty name is rejected with
// no mutation.
func (s *Store) Add(name string, intensity int) (models.Trigger, error) {
	if strings.TrimSpace(name) == "" {
		return models.Trigger{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var last int64
	if len(s.items) > 0 {
		last = s.items[0].ID
	}

	trigger := models.Trigger{
		ID:        models.NextID(s.now(), last),
		Name:      name,
		Intensity: intensity,
		DateAdded: s.now(),
	}

	s.items = append([]models.Trigger{trigger}, s.items...)
	storage.Set(s.store, constants.KeyTriggers, s.items)

	return trigger, nil
}

// All returns the collection newest first.
func (s *Store) All() []models.Trigger {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Trigger, len(s.items))
	copy(out, s.items)
	return out
}

// Reload replaces the in-memory collection from the store. Called when the
// backing key changes externally.
func (s *Store) Reload() {
	items := storage.Get(s.store, constants.KeyTriggers, []models.Trigger{})
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}
