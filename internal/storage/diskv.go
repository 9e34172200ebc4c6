package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/peterbourgon/diskv/v3"

	"clearday.dev/clearday/internal/logger"
)

// DiskvBackend stores each key as a file under a base directory. It is the
// default backend: human-inspectable, and external writes are observable
// through filesystem notifications.
type DiskvBackend struct {
	d        *diskv.Diskv
	basePath string
}

func NewDiskvBackend(basePath string) (*DiskvBackend, error) {
	if basePath == "" {
		return nil, errors.New("storage: base path required")
	}
	if err := os.MkdirAll(basePath, 0700); err != nil {
		return nil, fmt.Errorf("failed to create store directory: %w", err)
	}
	return &DiskvBackend{
		d: diskv.New(diskv.Options{
			BasePath:     basePath,
			CacheSizeMax: 1024 * 1024, // 1MB
		}),
		basePath: basePath,
	}, nil
}

func (b *DiskvBackend) Read(key string) ([]byte, error) {
	data, err := b.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (b *DiskvBackend) Write(key string, data []byte) error {
	return b.d.Write(key, data)
}

func (b *DiskvBackend) Erase(key string) error {
	if err := b.d.Erase(key); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}

func (b *DiskvBackend) Keys() ([]string, error) {
	var keys []string
	for key := range b.d.Keys(nil) {
		keys = append(keys, key)
	}
	return keys, nil
}

func (b *DiskvBackend) Close() error {
	return nil
}

// Watch streams the names of keys whose files change on disk until ctx is
// cancelled. Rapid bursts for the same key are coalesced so a storm of
// writes produces a single notification per key.
func (b *DiskvBackend) Watch(ctx context.Context) (<-chan string, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(b.basePath); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", b.basePath, err)
	}

	events := make(chan string, 16)
	throttle := newKeyThrottle(100 * time.Millisecond)

	go func() {
		defer close(events)
		defer watcher.Close()
		defer throttle.Stop()

		send := func(key string) {
			select {
			case events <- key:
			default:
				// Drop rather than block the watcher; the store re-reads the
				// backend on the next event for the key anyway.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Store watcher error", "error", err)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				key := filepath.Base(evt.Name)
				if key == "" || key[0] == '.' {
					continue
				}
				throttle.Enqueue(key, send)
			}
		}
	}()

	return events, nil
}

// keyThrottle coalesces rapid change notifications per key so consumers see
// one event per burst of filesystem activity instead of one per write.
type keyThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[string]struct{}
	delay   time.Duration
}

func newKeyThrottle(delay time.Duration) *keyThrottle {
	return &keyThrottle{
		delay:   delay,
		pending: make(map[string]struct{}),
	}
}

func (t *keyThrottle) Enqueue(key string, send func(string)) {
	t.mu.Lock()
	t.pending[key] = struct{}{}
	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *keyThrottle) flush(send func(string)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for key := range pending {
		send(key)
	}
}

func (t *keyThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
