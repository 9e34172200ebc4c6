package journal

import (
	"errors"
	"strings"
	"sync"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/storage"
)

// ErrEmptyContent is returned when an entry's content trims to nothing.
var ErrEmptyContent = errors.New("journal entry content cannot be empty")

// Store is the append-only journal collection, newest first. Entries are
// never edited or removed once added.
type Store struct {
	mu      sync.Mutex
	store   *storage.Store
	entries []models.JournalEntry
	mood    models.Mood
	now     func() time.Time
}

func NewStore(store *storage.Store) *Store {
	s := &Store{
		store: store,
		mood:  models.MoodNeutral,
		now:   time.Now,
	}
	s.entries = storage.Get(store, constants.KeyJournalEntries, []models.JournalEntry{})
	return s
}

// WithClock overrides the time source. Used by tests.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Add validates and prepends a new entry stamped with the pending mood, then
// resets the pending mood to neutral. Whitespace-only content is rejected
// with no mutation.
func (s *Store) Add(content string) (models.JournalEntry, error) {
	if strings.TrimSpace(content) == "" {
		return models.JournalEntry{}, ErrEmptyContent
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var last int64
	if len(s.entries) > 0 {
		last = s.entries[0].ID
	}

	entry := models.JournalEntry{
		ID:      models.NextID(s.now(), last),
		Date:    s.now(),
		Content: content,
		Mood:    s.mood,
	}

	s.entries = append([]models.JournalEntry{entry}, s.entries...)
	storage.Set(s.store, constants.KeyJournalEntries, s.entries)
	s.mood = models.MoodNeutral

	return entry, nil
}

// Entries returns the collection newest first.
func (s *Store) Entries() []models.JournalEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.JournalEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Mood returns the pending mood for the next entry.
func (s *Store) Mood() models.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mood
}

// SetMood selects the mood applied to the next saved entry. Unknown moods
// are ignored.
func (s *Store) SetMood(m models.Mood) {
	if !m.Valid() {
		return
	}
	s.mu.Lock()
	s.mood = m
	s.mu.Unlock()
}

// Reload replaces the in-memory collection from the store. Called when the
// backing key changes externally.
func (s *Store) Reload() {
	entries := storage.Get(s.store, constants.KeyJournalEntries, []models.JournalEntry{})
	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
}

// DominantMood returns the most frequent mood across the latest n entries,
// defaulting to neutral. Feeds the assist user context.
func (s *Store) DominantMood(n int) models.Mood {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := make(map[models.Mood]int)
	for i, e := range s.entries {
		if i >= n {
			break
		}
		counts[e.Mood]++
	}

	best := models.MoodNeutral
	bestCount := 0
	for _, m := range models.Moods() {
		if counts[m] > bestCount {
			best = m
			bestCount = counts[m]
		}
	}
	return best
}
