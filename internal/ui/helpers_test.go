package ui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
)

var seedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMailbox(t *testing.T, n int) (*mailbox.Service, *mailbox.SQLiteStore) {
	t.Helper()

	store, err := mailbox.OpenStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	_, err = mailbox.Seed(context.Background(), store, n, seedTime)
	require.NoError(t, err)

	svc, err := mailbox.NewService(store)
	require.NoError(t, err)
	return svc, store
}

// newTestList shows a list of three messages in a 400x600 test window.
// Transitions apply immediately.
func newTestList(t *testing.T, options func(model.Orientation) model.Options) (*SwipeList, *mailbox.Service, *mailbox.SQLiteStore) {
	t.Helper()
	test.NewTempApp(t)

	svc, store := newTestMailbox(t, 3)
	list := NewSwipeList(ListConfig{
		Mailbox: svc,
		Options: options,
		Logger:  discardLogger(),
	})

	w := test.NewWindow(list)
	t.Cleanup(w.Close)
	w.Resize(fyne.NewSize(400, 600))
	return list, svc, store
}

func rightExpansion(style *model.ExpansionStyle) func(model.Orientation) model.Options {
	return func(o model.Orientation) model.Options {
		opts := model.DefaultOptions()
		if o == model.OrientationRight {
			opts.ExpansionStyle = style
		}
		return opts
	}
}
