package mailbox

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/ytget/swipecell/internal/logging"
)

// DefaultTimeout bounds every store call made by the service
const DefaultTimeout = 5 * time.Second

// Service keeps the inbox in memory and writes changes through to the store
type Service struct {
	store    Store
	messages []Message
	mu       sync.RWMutex
	timeout  time.Duration
	logger   *slog.Logger
	onUpdate func(Message) // callback for UI updates
	onRemove func(string)
}

// NewService creates a mailbox service and loads the inbox from store
func NewService(store Store) (*Service, error) {
	s := &Service{
		store:   store,
		timeout: DefaultTimeout,
		logger:  logging.Logger().With("component", "mailbox"),
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// SetUpdateCallback sets the callback fired after a message changed
func (s *Service) SetUpdateCallback(callback func(Message)) {
	s.mu.Lock()
	s.onUpdate = callback
	s.mu.Unlock()
}

// SetRemoveCallback sets the callback fired after a message left the inbox
func (s *Service) SetRemoveCallback(callback func(id string)) {
	s.mu.Lock()
	s.onRemove = callback
	s.mu.Unlock()
}

// Reload refreshes the cached inbox from the store
func (s *Service) Reload() error {
	ctx, cancel := s.context()
	defer cancel()

	messages, err := s.store.List(ctx, false)
	if err != nil {
		return fmt.Errorf("reload inbox: %w", err)
	}
	s.mu.Lock()
	s.messages = messages
	s.mu.Unlock()
	return nil
}

// Messages returns a snapshot of the inbox, newest first
func (s *Service) Messages() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// Get returns a cached message
func (s *Service) Get(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.messages[i], true
	}
	return Message{}, false
}

// ToggleUnread flips the unread marker of a message
func (s *Service) ToggleUnread(id string) (bool, error) {
	var unread bool
	err := s.update(id, func(ctx context.Context, msg *Message) error {
		unread = !msg.Unread
		if err := s.store.SetUnread(ctx, id, unread); err != nil {
			return err
		}
		msg.Unread = unread
		return nil
	})
	return unread, err
}

// ToggleFlagged flips the flag of a message
func (s *Service) ToggleFlagged(id string) (bool, error) {
	var flagged bool
	err := s.update(id, func(ctx context.Context, msg *Message) error {
		flagged = !msg.Flagged
		if err := s.store.SetFlagged(ctx, id, flagged); err != nil {
			return err
		}
		msg.Flagged = flagged
		return nil
	})
	return flagged, err
}

// Archive moves a message out of the inbox
func (s *Service) Archive(id string) error {
	return s.remove(id, "archive", func(ctx context.Context) error {
		return s.store.SetArchived(ctx, id, true)
	})
}

// Delete removes a message permanently
func (s *Service) Delete(id string) error {
	return s.remove(id, "delete", func(ctx context.Context) error {
		return s.store.Delete(ctx, id)
	})
}

func (s *Service) update(id string, apply func(ctx context.Context, msg *Message) error) error {
	ctx, cancel := s.context()
	defer cancel()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := apply(ctx, &s.messages[i]); err != nil {
		s.mu.Unlock()
		return err
	}
	msg := s.messages[i]
	callback := s.onUpdate
	s.mu.Unlock()

	if callback != nil {
		callback(msg)
	}
	return nil
}

func (s *Service) remove(id, op string, apply func(ctx context.Context) error) error {
	ctx, cancel := s.context()
	defer cancel()

	s.mu.Lock()
	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err := apply(ctx); err != nil {
		s.mu.Unlock()
		return err
	}
	s.messages = append(s.messages[:i], s.messages[i+1:]...)
	callback := s.onRemove
	s.mu.Unlock()

	s.logger.Info("message removed", "op", op, "id", id)
	if callback != nil {
		callback(id)
	}
	return nil
}

func (s *Service) indexOf(id string) int {
	for i := range s.messages {
		if s.messages[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), s.timeout)
}

var _ Mailbox = (*Service)(nil)
