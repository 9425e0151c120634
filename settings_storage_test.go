//go:build !js

package jeweljam

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSettingsStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", settingsFileName)
	s := NewFileSettingsStorage(path)

	got, found, err := s.Load()
	require.NoError(t, err, "missing file is a first run")
	assert.False(t, found)
	assert.Equal(t, DisplaySettings{}, got)

	require.NoError(t, s.Save(DisplaySettings{FullScreen: true}))
	got, found, err = s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, got.FullScreen)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fullscreen: true")
}

func TestFileSettingsStorageSavedWindowedIsFound(t *testing.T) {
	s := NewFileSettingsStorage(filepath.Join(t.TempDir(), settingsFileName))
	require.NoError(t, s.Save(DisplaySettings{FullScreen: false}))

	got, found, err := s.Load()
	require.NoError(t, err)
	assert.True(t, found)
	assert.False(t, got.FullScreen)
}

func TestFileSettingsStorageCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFileName)
	require.NoError(t, os.WriteFile(path, []byte("fullscreen: [oops"), 0o644))

	_, found, err := NewFileSettingsStorage(path).Load()
	assert.Error(t, err)
	assert.False(t, found)
}

func TestSettingsDirOverride(t *testing.T) {
	dir := t.TempDir()
	SetSettingsDir(dir)
	t.Cleanup(func() { SetSettingsDir("") })

	s := NewSettingsStorage()
	require.NoError(t, s.Save(DisplaySettings{FullScreen: true}))
	assert.FileExists(t, filepath.Join(dir, settingsFileName))
}

func TestSettingsDirSetAfterInit(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { SetSettingsDir("") })

	// first launch: storage created and read before the host hands over its directory
	s := NewSettingsStorage()
	_, found, err := s.Load()
	require.NoError(t, err)
	require.False(t, found)

	dir := t.TempDir()
	SetSettingsDir(dir)
	require.NoError(t, s.Save(DisplaySettings{FullScreen: true}))

	// next launch: the game exists before the directory is set again
	SetSettingsDir("")
	d := &fakeDisplay{monitor: image.Pt(1920, 1080)}
	g := NewExtendedGame(DefaultConfig(), d, &fakeInput{}, nil)
	SetSettingsDir(dir)

	require.NoError(t, g.Update())
	assert.True(t, g.FullScreen())
	assert.True(t, d.fullscreen)
}
