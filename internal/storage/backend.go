package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Backend when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Backend is a durable flat key -> bytes mapping. Implementations must be
// safe for concurrent use by the Store and its watcher.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Keys() ([]string, error)
	Close() error
}

// Watcher is implemented by backends that can report changes made by other
// processes. The returned channel emits the keys that changed and is closed
// when ctx is cancelled.
type Watcher interface {
	Watch(ctx context.Context) (<-chan string, error)
}
