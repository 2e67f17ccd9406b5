package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/swipecell/internal/config"
	"github.com/ytget/swipecell/internal/mailbox"
	"github.com/ytget/swipecell/internal/model"
)

func TestRootCmd_Flags(t *testing.T) {
	root := newRootCmd()
	f := root.PersistentFlags()

	seed, err := f.GetInt("seed")
	require.NoError(t, err)
	assert.Equal(t, mailbox.DefaultDemoSize, seed)

	level, err := f.GetString("log-level")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLogLevel, level)

	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "gui")
	assert.Contains(t, names, "tui")
}

func TestFlags_DatabasePath(t *testing.T) {
	f := &flags{dbPath: "/tmp/x.db"}
	path, err := f.databasePath("/ignored.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", path)

	f = &flags{}
	path, err = f.databasePath("/settings.db")
	require.NoError(t, err)
	assert.Equal(t, "/settings.db", path)

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	t.Setenv("HOME", home)
	t.Setenv("AppData", home)
	path, err = f.databasePath("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultDatabaseName, filepath.Base(path))
}

func TestFlags_FileOptions(t *testing.T) {
	f := &flags{}
	options, err := f.fileOptions()
	require.NoError(t, err)
	assert.Nil(t, options)

	path := filepath.Join(t.TempDir(), "swipe.toml")
	require.NoError(t, os.WriteFile(path, []byte("[right]\npreset = \"fill\"\n"), 0o644))
	f.optionsPath = path
	options, err = f.fileOptions()
	require.NoError(t, err)
	require.NotNil(t, options)
	right := options.For(model.OrientationRight)
	require.NotNil(t, right.ExpansionStyle)
	assert.Equal(t, model.CompletionFill, right.ExpansionStyle.CompletionAnimation.Kind)
}

func TestFlags_TouchPath(t *testing.T) {
	f := &flags{}
	path, err := f.touchPath()
	require.NoError(t, err)
	assert.Empty(t, path)

	f.touch = "/dev/input/event3"
	path, err = f.touchPath()
	require.NoError(t, err)
	assert.Equal(t, "/dev/input/event3", path)
}
