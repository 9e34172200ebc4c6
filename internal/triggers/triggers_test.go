package triggers

import (
	"errors"
	"testing"
	"time"

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

func TestAddRejectsEmptyName(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Add("   ", 5); !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
	if all := s.All(); len(all) != 0 {
		t.Errorf("triggers after rejected add = %v, want none", all)
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	s, _ := newTestStore(t)

	if _, err := s.Add("stress", 7); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Add("boredom", 3); err != nil {
		t.Fatal(err)
	}

	all := s.All()
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name != "boredom" || all[1].Name != "stress" {
		t.Errorf("order = [%s, %s], want newest first", all[0].Name, all[1].Name)
	}
	if all[0].ID <= all[1].ID {
		t.Errorf("ids not monotonic: %d then %d", all[1].ID, all[0].ID)
	}
}

func TestTriggersSurviveReload(t *testing.T) {
	s, kv := newTestStore(t)

	if _, err := s.Add("loneliness", 6); err != nil {
		t.Fatal(err)
	}
	kv.Flush()

	fresh := NewStore(kv)
	all := fresh.All()
	if len(all) != 1 || all[0].Name != "loneliness" || all[0].Intensity != 6 {
		t.Errorf("reloaded triggers = %v", all)
	}
}
