package catalog

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cat := Default()
	require.NoError(t, cat.Validate())
	assert.Len(t, cat.Nav, 6)
	assert.Len(t, cat.Movies, 6)
	assert.Len(t, cat.Apps, 12)

	netflix, ok := cat.App(0)
	require.True(t, ok)
	assert.True(t, netflix.Launchable())
	prime, ok := cat.App(1)
	require.True(t, ok)
	assert.False(t, prime.Launchable())

	_, ok = cat.App(12)
	assert.False(t, ok)
	_, ok = cat.Movie(-1)
	assert.False(t, ok)
	_, ok = cat.NavEntry(6)
	assert.False(t, ok)
}

func TestLoad_MissingFileUsesDefault(t *testing.T) {
	cat, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)

	cat, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestLoad_OverridesSections(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[apps]]
id = "kodi"
name = "Kodi"
package = "org.xbmc.kodi"

[[apps]]
id = "vlc"
name = "VLC"
`), 0o600))

	cat, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cat.Apps, 2)
	assert.Equal(t, "org.xbmc.kodi", cat.Apps[0].Package)
	assert.False(t, cat.Apps[1].Launchable())
	assert.Equal(t, Default().Movies, cat.Movies, "absent sections keep defaults")
	assert.Equal(t, Default().Featured, cat.Featured)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte(`apps = [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse catalog")

	_, err = Parse([]byte(`
[[apps]]
id = "a"
name = "A"

[[apps]]
id = "a"
name = "Again"
`))
	require.ErrorIs(t, err, ErrDuplicateApp)

	_, err = Parse([]byte(`
[[apps]]
name = "No id"
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestValidate_EmptySections(t *testing.T) {
	cat := Default()
	cat.Movies = nil
	assert.ErrorIs(t, cat.Validate(), ErrEmptySection)
}

func TestMarshal_RoundTrips(t *testing.T) {
	data, err := Marshal(Default())
	require.NoError(t, err)
	assert.Contains(t, string(data), "com.spotify.music")

	cat, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cat)
}

func TestWatch_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[apps]]
id = "one"
name = "One"
`), 0o600))

	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Catalog, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, 20*time.Millisecond, func(c Catalog) { changes <- c }, log)
	}()

	// Give the watcher time to register the directory.
	require.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "watching catalog" {
				return true
			}
		}
		return false
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`
[[apps]]
id = "one"
name = "One"

[[apps]]
id = "two"
name = "Two"
`), 0o600))

	select {
	case cat := <-changes:
		assert.Len(t, cat.Apps, 2)
	case <-time.After(5 * time.Second):
		t.Fatal("catalog change was not delivered")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectoryFails(t *testing.T) {
	log, _ := test.NewNullLogger()
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "catalog.toml"), 0, func(Catalog) {}, log)
	require.Error(t, err)
}
