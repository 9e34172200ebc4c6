package journal

import (
	"errors"
	"testing"
	"time"

	"clearday.dev/clearday/internal/models"
	"clearday.dev/clearday/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Store) {
	t.Helper()
	backend, err := storage.NewDiskvBackend(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	kv := storage.NewStore(backend, storage.WithDebounce(time.Millisecond))
	t.Cleanup(func() { kv.Close() })
	return NewStore(kv), kv
}

func TestAddRejectsEmptyContent(t *testing.T) {
	s, _ := newTestStore(t)

	for _, content := range []string{"", "   ", "\n\t"} {
		if _, err := s.Add(content); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("Add(%q) err = %v, want ErrEmptyContent", content, err)
		}
	}
	if got := s.Entries(); len(got) != 0 {
		t.Errorf("entries after rejected adds = %v, want none", got)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Add("first"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("second"); err != nil {
		t.Fatal(err)
	}

	entries := s.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Content != "second" || entries[1].Content != "first" {
		t.Errorf("order = [%s, %s], want newest first", entries[0].Content, entries[1].Content)
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	s, _ := newTestStore(t)
	fixed := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	s.WithClock(func() time.Time { return fixed })

	// Same-millisecond adds still get distinct, increasing ids.
	a, _ := s.Add("a")
	b, _ := s.Add("b")
	c, _ := s.Add("c")

	if !(a.ID < b.ID && b.ID < c.ID) {
		t.Errorf("ids not monotonic: %d, %d, %d", a.ID, b.ID, c.ID)
	}
}

func TestMoodAppliesToEntryAndResets(t *testing.T) {
	s, _ := newTestStore(t)

	s.SetMood(models.MoodStruggling)
	entry, err := s.Add("rough day")
	if err != nil {
		t.Fatal(err)
	}
	if entry.Mood != models.MoodStruggling {
		t.Errorf("entry mood = %s, want struggling", entry.Mood)
	}
	if got := s.Mood(); got != models.MoodNeutral {
		t.Errorf("pending mood after add = %s, want neutral", got)
	}

	// Unknown moods are ignored.
	s.SetMood(models.Mood("ecstatic"))
	if got := s.Mood(); got != models.MoodNeutral {
		t.Errorf("pending mood after invalid set = %s, want neutral", got)
	}
}

func TestEntriesSurviveReload(t *testing.T) {
	s, kv := newTestStore(t)

	if _, err := s.Add("persisted"); err != nil {
		t.Fatal(err)
	}
	kv.Flush()

	fresh := NewStore(kv)
	entries := fresh.Entries()
	if len(entries) != 1 || entries[0].Content != "persisted" {
		t.Errorf("reloaded entries = %v", entries)
	}
}

func TestDominantMood(t *testing.T) {
	s, _ := newTestStore(t)

	if got := s.DominantMood(5); got != models.MoodNeutral {
		t.Errorf("dominant mood with no entries = %s, want neutral", got)
	}

	for _, m := range []models.Mood{models.MoodGood, models.MoodGood, models.MoodDifficult} {
		s.SetMood(m)
		if _, err := s.Add("entry"); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.DominantMood(5); got != models.MoodGood {
		t.Errorf("dominant mood = %s, want good", got)
	}

	// Only the latest n entries count.
	if got := s.DominantMood(1); got != models.MoodDifficult {
		t.Errorf("dominant mood of latest entry = %s, want difficult", got)
	}
}
