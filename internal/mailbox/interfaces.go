package mailbox

import "context"

// Store persists messages.
type Store interface {
	List(ctx context.Context, includeArchived bool) ([]Message, error)
	Get(ctx context.Context, id string) (Message, error)
	Insert(ctx context.Context, msg Message) error
	Delete(ctx context.Context, id string) error
	SetUnread(ctx context.Context, id string, unread bool) error
	SetFlagged(ctx context.Context, id string, flagged bool) error
	SetArchived(ctx context.Context, id string, archived bool) error
	Count(ctx context.Context) (int, error)
	Close() error
}

// Mailbox defines the interface the list front ends drive.
type Mailbox interface {
	SetUpdateCallback(func(Message))
	SetRemoveCallback(func(id string))
	Messages() []Message
	Get(id string) (Message, bool)

	// ToggleUnread flips the unread marker and returns the new value
	ToggleUnread(id string) (bool, error)

	// ToggleFlagged flips the flag and returns the new value
	ToggleFlagged(id string) (bool, error)

	// Archive hides the message from the inbox
	Archive(id string) error

	// Delete removes the message permanently
	Delete(id string) error

	// Reload refreshes the cached list from the store
	Reload() error
}
