package mailbox

import (
	"log/slog"

	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/logging"
	"github.com/ytget/swipecell/internal/model"
)

// Action identifiers of the message rows
const (
	ActionRead    = "read"
	ActionTrash   = "trash"
	ActionFlag    = "flag"
	ActionArchive = "archive"
)

// Actions builds the swipe actions of message rows. Both front ends share it.
type Actions struct {
	Mailbox Mailbox
	// Text translates a message key
	Text   func(key string) string
	Logger *slog.Logger
	// Notify receives the key of a status text to show
	Notify func(key string)
}

// For returns the actions revealed on side o of msg's row: mark read on the
// left, trash, flag and archive on the right.
func (a Actions) For(msg Message, o model.Orientation) []*model.Action {
	id := msg.ID

	if o == model.OrientationLeft {
		title := i18n.KeyUnread
		if msg.Unread {
			title = i18n.KeyRead
		}
		read := model.NewAction(model.ActionStyleDefault, a.text(title), func(action *model.Action, _ int) {
			if _, err := a.Mailbox.ToggleUnread(id); err != nil {
				a.logger().Error("failed to toggle unread", "id", id, "error", err)
			}
			action.Fulfill(model.FulfillmentReset)
		})
		read.Identifier = ActionRead
		read.HidesWhenSelected = true
		return []*model.Action{read}
	}

	trash := model.NewAction(model.ActionStyleDestructive, a.text(i18n.KeyTrash), func(action *model.Action, _ int) {
		// a fill expansion removes the row itself once the collapse is done
		if action.HasPendingFulfillment() {
			action.Fulfill(model.FulfillmentDelete)
			return
		}
		a.Delete(id)
	})
	trash.Identifier = ActionTrash
	trash.HidesWhenSelected = true

	flagTitle := i18n.KeyFlag
	if msg.Flagged {
		flagTitle = i18n.KeyUnflag
	}
	flag := model.NewAction(model.ActionStyleDefault, a.text(flagTitle), func(_ *model.Action, _ int) {
		if _, err := a.Mailbox.ToggleFlagged(id); err != nil {
			a.logger().Error("failed to toggle flag", "id", id, "error", err)
		}
	})
	flag.Identifier = ActionFlag
	flag.HidesWhenSelected = true

	archive := model.NewAction(model.ActionStyleDefault, a.text(i18n.KeyArchive), func(_ *model.Action, _ int) {
		if err := a.Mailbox.Archive(id); err != nil {
			a.logger().Error("failed to archive", "id", id, "error", err)
			return
		}
		a.notify(i18n.KeyMessageArchived)
	})
	archive.Identifier = ActionArchive
	archive.HidesWhenSelected = true

	return []*model.Action{trash, flag, archive}
}

// Delete removes a message and reports it
func (a Actions) Delete(id string) {
	if err := a.Mailbox.Delete(id); err != nil {
		a.logger().Error("failed to delete", "id", id, "error", err)
		return
	}
	a.notify(i18n.KeyMessageDeleted)
}

func (a Actions) text(key string) string {
	if a.Text == nil {
		return key
	}
	return a.Text(key)
}

func (a Actions) notify(key string) {
	if a.Notify != nil {
		a.Notify(key)
	}
}

func (a Actions) logger() *slog.Logger {
	if a.Logger == nil {
		return logging.Logger()
	}
	return a.Logger
}
