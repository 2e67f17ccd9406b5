package mailbox

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenDemo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mailbox.db")

	demo, err := OpenDemo(t.Context(), path, 4)
	require.NoError(t, err)
	assert.Len(t, demo.Service.Messages(), 4)

	first := demo.Service.Messages()[0]
	require.NoError(t, demo.Service.Delete(first.ID))
	require.NoError(t, demo.Close())

	// an existing inbox is not seeded again
	demo, err = OpenDemo(t.Context(), path, 4)
	require.NoError(t, err)
	defer demo.Close()
	assert.Len(t, demo.Service.Messages(), 3)

	require.NoError(t, demo.Reseed())
	require.NoError(t, demo.Service.Reload())
	assert.Len(t, demo.Service.Messages(), 4)
}

func TestOpenDemo_DefaultSize(t *testing.T) {
	demo, err := OpenDemo(t.Context(), ":memory:", 0)
	require.NoError(t, err)
	defer demo.Close()
	assert.Len(t, demo.Service.Messages(), DefaultDemoSize)
}
