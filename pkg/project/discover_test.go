package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscover(t *testing.T) {
	dir := t.TempDir()

	write := func(name, contents string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(contents), 0644))
	}

	write("beta.toml", "name = \"beta\"\n\n[[windows]]\n\n[[windows]]\n")
	write("alpha.yml", "name: alpha\nwindows:\n  - name: main\n")
	write("broken.toml", "name = ")
	write("notes.txt", "not a config")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	entries, err := Discover(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "alpha", entries[0].Name)
	assert.Equal(t, 1, entries[0].Windows)
	assert.NoError(t, entries[0].Err)

	assert.Equal(t, "beta", entries[1].Name)
	assert.Equal(t, 2, entries[1].Windows)

	// Broken configs are listed under their file name so the picker can
	// surface them instead of hiding them.
	assert.Equal(t, "broken", entries[2].Name)
	assert.Error(t, entries[2].Err)
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}
