package mailbox

import (
	"context"
	"fmt"
	"time"
)

// DefaultDemoSize is the number of messages in a fresh demo inbox
const DefaultDemoSize = 12

// Demo is a seeded inbox stored in a SQLite file
type Demo struct {
	Store   *SQLiteStore
	Service *Service
	size    int
}

// OpenDemo opens the database at path, seeds it when empty and loads the inbox
func OpenDemo(ctx context.Context, path string, size int) (*Demo, error) {
	if size <= 0 {
		size = DefaultDemoSize
	}
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	if _, err := Seed(ctx, store, size, time.Now()); err != nil {
		store.Close()
		return nil, fmt.Errorf("seed mailbox: %w", err)
	}
	service, err := NewService(store)
	if err != nil {
		store.Close()
		return nil, err
	}
	return &Demo{Store: store, Service: service, size: size}, nil
}

// Reseed replaces the stored messages with a fresh sample inbox. The caller
// reloads its views afterwards.
func (d *Demo) Reseed() error {
	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	defer cancel()
	if _, err := Reseed(ctx, d.Store, d.size, time.Now()); err != nil {
		return fmt.Errorf("reseed mailbox: %w", err)
	}
	return nil
}

// Close closes the database
func (d *Demo) Close() error {
	return d.Store.Close()
}
