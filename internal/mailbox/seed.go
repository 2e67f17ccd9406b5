package mailbox

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var samples = []struct {
	sender, subject, preview string
}{
	{"Realm", "Video Podcast", "Here are the slides from the talk on reactive list updates."},
	{"The Pragmatic Bookshelf", "Your eBook is ready", "Thanks for your purchase. Your download links are below."},
	{"Mike", "Lunch on Friday?", "There is a new ramen place around the corner, want to try it?"},
	{"GitHub", "New pull request", "A contributor opened a pull request to tune the swipe spring."},
	{"Airline", "Your boarding pass", "Boarding starts 40 minutes before departure at gate B12."},
	{"Anna", "Design review notes", "Attached are my notes on the destructive fill animation."},
	{"Newsletter", "Weekly digest", "Five articles about gesture driven interfaces this week."},
	{"Bank", "Statement available", "Your monthly statement can now be viewed online."},
	{"Conference", "Call for papers", "Submissions close at the end of the month."},
	{"Support", "Ticket resolved", "We believe your issue has been resolved. Reply to reopen."},
}

// NewMessageID returns a time ordered id for a new message
func NewMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Seed fills an empty store with n demo messages received before now.
// A store that already has messages is left alone.
func Seed(ctx context.Context, store Store, n int, now time.Time) (int, error) {
	count, err := store.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	for i := 0; i < n; i++ {
		sample := samples[i%len(samples)]
		subject := sample.subject
		if i >= len(samples) {
			subject = fmt.Sprintf("%s (%d)", subject, i/len(samples)+1)
		}
		msg := Message{
			ID:         NewMessageID(),
			Sender:     sample.sender,
			Subject:    subject,
			Preview:    sample.preview,
			ReceivedAt: now.Add(-time.Duration(i) * 37 * time.Minute),
			Unread:     i%3 != 2,
			Flagged:    i%7 == 4,
		}
		if err := store.Insert(ctx, msg); err != nil {
			return i, err
		}
	}
	return n, nil
}

// Reseed drops every stored message, archived ones included, and seeds n new ones
func Reseed(ctx context.Context, store Store, n int, now time.Time) (int, error) {
	messages, err := store.List(ctx, true)
	if err != nil {
		return 0, err
	}
	for _, msg := range messages {
		if err := store.Delete(ctx, msg.ID); err != nil {
			return 0, err
		}
	}
	return Seed(ctx, store, n, now)
}
