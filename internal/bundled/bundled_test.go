package bundled

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/starfetch/internal/catalog"
	"github.com/handiism/starfetch/internal/model"
)

func TestNames(t *testing.T) {
	names, err := Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"cassiopeia", "cygnus", "lyra", "orion", "scorpius", "ursa_major"}, names)
}

func TestBundledRecordsAreValid(t *testing.T) {
	dir := t.TempDir()
	_, err := Install(dir, false)
	require.NoError(t, err)

	cat := catalog.New(dir, nil)
	names, err := Names()
	require.NoError(t, err)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			c, err := cat.Fetch(name)
			require.NoError(t, err)
			assert.NotEmpty(t, c.Name)
			assert.NotEmpty(t, c.Graph)
			assert.Len(t, []rune(c.Title), model.GridWidth, "title must span the map")
		})
	}
}

func TestInstall_KeepsExistingFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "constellations")
	require.NoError(t, os.MkdirAll(dir, 0755))
	custom := []byte(`{"custom": true}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "lyra.json"), custom, 0644))

	installed, err := Install(dir, false)
	require.NoError(t, err)
	assert.NotContains(t, installed, "lyra")
	assert.Contains(t, installed, "orion")

	data, err := os.ReadFile(filepath.Join(dir, "lyra.json"))
	require.NoError(t, err)
	assert.Equal(t, custom, data)

	installed, err = Install(dir, true)
	require.NoError(t, err)
	assert.Contains(t, installed, "lyra")

	data, err = os.ReadFile(filepath.Join(dir, "lyra.json"))
	require.NoError(t, err)
	want, err := Record("lyra")
	require.NoError(t, err)
	assert.Equal(t, want, data)
}
