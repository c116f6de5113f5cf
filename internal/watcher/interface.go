package watcher

import "context"

// EventHandler processes a newly detected transcript file.
type EventHandler func(ctx context.Context, path string) error

// Watcher monitors a directory for new transcript files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}
