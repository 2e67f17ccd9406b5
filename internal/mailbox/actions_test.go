package mailbox

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipecell/internal/model"
)

func titles(actions []*model.Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.Title
	}
	return out
}

func TestActions_Layout(t *testing.T) {
	service, _ := newSeededService(t, 5)
	actions := Actions{Mailbox: service}
	messages := service.Messages()

	// message 0 is unread, message 4 is flagged
	left := actions.For(messages[0], model.OrientationLeft)
	require.Len(t, left, 1)
	assert.Equal(t, ActionRead, left[0].Identifier)
	assert.Equal(t, "read", left[0].Title)
	assert.True(t, left[0].HidesWhenSelected)

	right := actions.For(messages[0], model.OrientationRight)
	assert.Equal(t, []string{"trash", "flag", "archive"}, titles(right))
	assert.Equal(t, model.ActionStyleDestructive, right[0].Style)

	assert.Equal(t, "unflag", actions.For(messages[4], model.OrientationRight)[1].Title)
	assert.Equal(t, "unread", actions.For(messages[2], model.OrientationLeft)[0].Title)
}

func TestActions_Handlers(t *testing.T) {
	service, store := newSeededService(t, 3)
	var notified []string
	actions := Actions{
		Mailbox: service,
		Text:    func(key string) string { return "<" + key + ">" },
		Notify:  func(key string) { notified = append(notified, key) },
	}
	messages := service.Messages()

	left := actions.For(messages[0], model.OrientationLeft)
	assert.Equal(t, "<read>", left[0].Title)
	var fulfilled model.FulfillmentStyle
	left[0].SetCompletionHandler(func(style model.FulfillmentStyle) { fulfilled = style })
	left[0].Invoke(0)
	assert.Equal(t, model.FulfillmentReset, fulfilled)
	msg, ok := service.Get(messages[0].ID)
	require.True(t, ok)
	assert.False(t, msg.Unread)

	right := actions.For(messages[1], model.OrientationRight)
	right[1].Invoke(1)
	msg, _ = service.Get(messages[1].ID)
	assert.True(t, msg.Flagged)

	right[2].Invoke(2)
	_, ok = service.Get(messages[1].ID)
	assert.False(t, ok)

	right = actions.For(messages[2], model.OrientationRight)
	right[0].Invoke(0)
	_, ok = service.Get(messages[2].ID)
	assert.False(t, ok)

	assert.Equal(t, []string{"message_archived", "message_deleted"}, notified)
	count, err := store.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReseed(t *testing.T) {
	service, store := newSeededService(t, 3)
	require.NoError(t, service.Archive(service.Messages()[0].ID))

	n, err := Reseed(t.Context(), store, 4, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	count, err := store.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}
