package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"clearday.dev/clearday/internal/constants"
	"clearday.dev/clearday/internal/logger"
)

// Store is a durable mapping from string key to JSON-serializable value.
//
// Reads and writes go through an in-memory cache so callers always see their
// own writes immediately. Durable writes are debounced per key: repeated Set
// calls within the debounce window persist only the final value. External
// changes to the backend (another process writing the same store) are folded
// into the cache last-writer-wins and reported to subscribers.
//
// Persistence is best effort by design: a failed backend write is logged and
// the in-memory value stands, so the session stays usable even when the disk
// does not cooperate.
type Store struct {
	mu       sync.Mutex
	backend  Backend
	debounce time.Duration

	cache  map[string]json.RawMessage
	loaded map[string]bool
	dirty  map[string]json.RawMessage
	timers map[string]*time.Timer

	subs   []func(key string)
	cancel context.CancelFunc
}

// Option configures a Store.
type Option func(*Store)

// WithDebounce overrides the durable-write debounce window. Used by tests.
func WithDebounce(d time.Duration) Option {
	return func(s *Store) { s.debounce = d }
}

// NewStore wraps a backend. The store does not start watching for external
// changes until StartWatch is called.
func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		debounce: constants.WriteDebounce,
		cache:    make(map[string]json.RawMessage),
		loaded:   make(map[string]bool),
		dirty:    make(map[string]json.RawMessage),
		timers:   make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a callback invoked (on the watcher goroutine) whenever
// an external change to a key is folded into the store.
func (s *Store) Subscribe(fn func(key string)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// StartWatch begins folding external backend changes into the store. It is a
// no-op for backends that cannot watch.
func (s *Store) StartWatch(ctx context.Context) error {
	watcher, ok := s.backend.(Watcher)
	if !ok {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	events, err := watcher.Watch(ctx)
	if err != nil {
		cancel()
		return err
	}

	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		for key := range events {
			s.applyExternal(key)
		}
	}()
	return nil
}

// Get deserializes the stored value for key into a fresh T. A missing key,
// unreadable backend, or corrupt stored value all fall back to def; failures
// are logged and never surfaced to the caller.
func Get[T any](s *Store, key string, def T) T {
	raw, ok := s.getRaw(key)
	if !ok {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		logger.Warn("Ignoring corrupt value in store", "key", key, "error", err)
		return def
	}
	return v
}

// Set updates the in-memory value for key immediately and schedules a
// debounced durable write. Serialization or persistence failures are logged
// and do not propagate.
func Set[T any](s *Store, key string, v T) {
	raw, err := json.Marshal(v)
	if err != nil {
		logger.Error("Failed to serialize value for store", "key", key, "error", err)
		return
	}
	s.setRaw(key, raw)
}

// Has reports whether key currently holds a value.
func (s *Store) Has(key string) bool {
	_, ok := s.getRaw(key)
	return ok
}

// Delete removes key from the store and the backend immediately (no
// debounce; deletes are rare and must not linger, e.g. credential cleanup).
func (s *Store) Delete(key string) {
	s.mu.Lock()
	if t := s.timers[key]; t != nil {
		t.Stop()
		delete(s.timers, key)
	}
	delete(s.dirty, key)
	delete(s.cache, key)
	s.loaded[key] = true
	s.mu.Unlock()

	if err := s.backend.Erase(key); err != nil {
		logger.Warn("Failed to erase key from store", "key", key, "error", err)
	}
}

// Keys lists every key with a value, including ones whose first durable
// write is still pending.
func (s *Store) Keys() ([]string, error) {
	keys, err := s.backend.Keys()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		seen[k] = true
	}
	s.mu.Lock()
	for k := range s.dirty {
		if !seen[k] {
			keys = append(keys, k)
		}
	}
	s.mu.Unlock()
	return keys, nil
}

// Flush persists all pending writes now. Callers use it on shutdown and in
// tests; normal operation relies on the debounce timers.
func (s *Store) Flush() {
	s.mu.Lock()
	pending := make(map[string]json.RawMessage, len(s.dirty))
	for key, raw := range s.dirty {
		pending[key] = raw
		delete(s.dirty, key)
		if t := s.timers[key]; t != nil {
			t.Stop()
			delete(s.timers, key)
		}
	}
	s.mu.Unlock()

	for key, raw := range pending {
		s.persist(key, raw)
	}
}

// Close flushes pending writes, stops the watcher, and closes the backend.
func (s *Store) Close() error {
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	s.Flush()
	return s.backend.Close()
}

func (s *Store) getRaw(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	if raw, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return raw, true
	}
	if s.loaded[key] {
		s.mu.Unlock()
		return nil, false
	}
	s.mu.Unlock()

	data, err := s.backend.Read(key)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded[key] = true
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("Failed to read key from store", "key", key, "error", err)
		}
		return nil, false
	}
	s.cache[key] = json.RawMessage(data)
	return s.cache[key], true
}

func (s *Store) setRaw(key string, raw json.RawMessage) {
	s.mu.Lock()
	s.cache[key] = raw
	s.loaded[key] = true
	s.dirty[key] = raw

	if t := s.timers[key]; t != nil {
		t.Reset(s.debounce)
		s.mu.Unlock()
		return
	}
	s.timers[key] = time.AfterFunc(s.debounce, func() {
		s.flushKey(key)
	})
	s.mu.Unlock()
}

func (s *Store) flushKey(key string) {
	s.mu.Lock()
	raw, ok := s.dirty[key]
	delete(s.dirty, key)
	delete(s.timers, key)
	s.mu.Unlock()

	if ok {
		s.persist(key, raw)
	}
}

func (s *Store) persist(key string, raw json.RawMessage) {
	if err := s.backend.Write(key, raw); err != nil {
		// Best effort: the in-memory value stands, the session continues.
		logger.Warn("Failed to persist key", "key", key, "error", err)
	}
}

// applyExternal folds a change made by another process into the cache. A key
// with a local write still pending keeps the local value: within this
// process, reads always reflect the most recent local write.
func (s *Store) applyExternal(key string) {
	s.mu.Lock()
	if _, pending := s.dirty[key]; pending {
		s.mu.Unlock()
		return
	}
	prev, hadPrev := s.cache[key]
	s.mu.Unlock()

	data, err := s.backend.Read(key)

	s.mu.Lock()
	changed := false
	if err != nil {
		if errors.Is(err, ErrNotFound) && hadPrev {
			delete(s.cache, key)
			changed = true
		}
	} else if !hadPrev || !bytes.Equal(prev, data) {
		s.cache[key] = json.RawMessage(data)
		s.loaded[key] = true
		changed = true
	}
	subs := make([]func(string), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()

	if changed {
		for _, fn := range subs {
			fn(key)
		}
	}
}
