package mailbox

import (
	"errors"
	"time"
)

// ErrNotFound is returned for an unknown message id
var ErrNotFound = errors.New("mailbox: message not found")

// Message is one entry of the demo inbox
type Message struct {
	ID         string
	Sender     string
	Subject    string
	Preview    string
	ReceivedAt time.Time
	Unread     bool
	Flagged    bool
	Archived   bool
}
