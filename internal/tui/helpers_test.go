package tui

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipecell/internal/i18n"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
)

var seedTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// steppingClock advances one frame per reading so drags have a velocity
func steppingClock() func() time.Time {
	now := seedTime
	return func() time.Time {
		now = now.Add(FrameInterval)
		return now
	}
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

// newTestModel shows three messages in a 60x20 terminal; transitions apply immediately
func newTestModel(t *testing.T, options func(model.Orientation) model.Options) (*Model, *mailbox.Service) {
	t.Helper()

	svc, _ := newTestMailbox(t, 3)
	loc := i18n.New()
	loc.SetLanguage("en")

	m := New(Config{
		Mailbox:      svc,
		Localization: loc,
		Options:      options,
		Clock:        steppingClock(),
		Logger:       discardLogger(),
	})
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m, svc
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}
