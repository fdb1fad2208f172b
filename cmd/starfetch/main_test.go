package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handiism/starfetch/internal/bundled"
	"github.com/handiism/starfetch/internal/catalog"
	"github.com/handiism/starfetch/internal/config"
)

// execute runs the root command with args and an isolated environment.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cmd := rootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func assetPath(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	_, err := bundled.Install(config.ConstellationsDir(base), false)
	require.NoError(t, err)
	return base
}

func TestShowByName(t *testing.T) {
	out, err := execute(t, "-a", assetPath(t), "orion")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "┌─────── Orion ────────┐", lines[0])
	assert.Contains(t, lines[2], "Orion")
	assert.Equal(t, "└──────────────────────┘", lines[11])
}

func TestShowRandom(t *testing.T) {
	out, err := execute(t, "--asset-path", assetPath(t), "--random")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 12)
}

func TestList(t *testing.T) {
	out, err := execute(t, "-a", assetPath(t), "-l", "--match", "{lyra,orion}")
	require.NoError(t, err)
	assert.Equal(t, "lyra - Lyra (NQ4)\norion - Orion (NQ1)\n", out)
}

func TestListYAML(t *testing.T) {
	out, err := execute(t, "-a", assetPath(t), "-l", "--format", "yaml", "--match", "lyra")
	require.NoError(t, err)
	assert.Contains(t, out, "stem: lyra")
	assert.Contains(t, out, "quadrant: NQ4")
}

func TestPath(t *testing.T) {
	base := assetPath(t)
	out, err := execute(t, "-a", base, "--path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(base, "constellations")+"\n", out)
}

func TestActionSelection(t *testing.T) {
	base := assetPath(t)
	tests := []struct {
		name string
		args []string
	}{
		{"no action", []string{"-a", base}},
		{"name and random", []string{"-a", base, "orion", "-r"}},
		{"list and path", []string{"-a", base, "-l", "-p"}},
		{"random and list", []string{"-a", base, "-r", "-l"}},
		{"name and version", []string{"-a", base, "orion", "--version"}},
		{"init and validate", []string{"-a", base, "--init", "--validate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, errUsage)
		})
	}
}

func TestUsageCheckedBeforeResolution(t *testing.T) {
	_, err := execute(t, "-a", filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, errUsage)
}

func TestListOnlyFlags(t *testing.T) {
	_, err := execute(t, "-a", assetPath(t), "orion", "--match", "o*")
	assert.ErrorContains(t, err, "only apply to --list")

	_, err = execute(t, "-a", assetPath(t), "orion", "--force")
	assert.ErrorContains(t, err, "only apply to --init")
}

func TestNamesNeverShadowedByCommands(t *testing.T) {
	base := assetPath(t)
	for _, name := range []string{"version", "help", "completion", "init", "validate"} {
		record := `{"title":"──────── Star ────────","graph":[[1,1,"*"]],"name":"Name-` + name +
			`","quadrant":"NQ1","right_ascension":"r","declination":"d","area":"a","main_stars":"m"}`
		require.NoError(t, os.WriteFile(filepath.Join(base, "constellations", name+".json"), []byte(record), 0644))
	}

	for _, name := range []string{"version", "help", "completion", "init", "validate"} {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, "-a", base, name)
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			require.Len(t, lines, 12)
			assert.Contains(t, lines[2], "Name-"+name)
		})
	}
}

func TestErrors(t *testing.T) {
	base := assetPath(t)
	require.NoError(t, os.WriteFile(filepath.Join(base, "constellations", "broken.json"), []byte("{"), 0644))

	_, err := execute(t, "-a", base, "andromeda")
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = execute(t, "-a", base, "broken")
	assert.ErrorIs(t, err, catalog.ErrMalformed)

	_, err = execute(t, "-a", t.TempDir(), "orion")
	assert.ErrorIs(t, err, config.ErrMissingConstellations)

	_, err = execute(t, "-a", base, "--color", "rainbow", "orion")
	assert.Error(t, err)
}

func TestConfigFile(t *testing.T) {
	base := assetPath(t)
	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("asset_path: "+base+"\nlist_format: json\n"), 0644))

	out, err := execute(t, "-c", cfg, "-l", "--match", "lyra")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"stem":"lyra","name":"Lyra","quadrant":"NQ4"}]`, out)
}

func TestInitAndUserData(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	dataHome := t.TempDir()

	run := func(args ...string) (string, error) {
		t.Setenv("XDG_DATA_HOME", dataHome)
		cmd := rootCmd()
		var out bytes.Buffer
		cmd.SetOut(&out)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(args)
		err := cmd.ExecuteContext(context.Background())
		return out.String(), err
	}

	out, err := run("--resolution", "userdata", "--list")
	assert.ErrorIs(t, err, catalog.ErrEmpty, "fresh user data directory is created empty")
	assert.Empty(t, out)

	out, err = run("--init")
	require.NoError(t, err)
	assert.Contains(t, out, "Installed 6 constellation(s)")

	out, err = run("--init")
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")

	out, err = run("--resolution", "userdata", "cygnus")
	require.NoError(t, err)
	assert.Contains(t, out, "Cygnus")
}

func TestValidate(t *testing.T) {
	base := assetPath(t)

	out, err := execute(t, "-a", base, "--validate")
	require.NoError(t, err)
	assert.Contains(t, out, "6 record(s) checked, 0 problem(s)")

	require.NoError(t, os.WriteFile(filepath.Join(base, "constellations", "broken.json"), []byte("{"), 0644))
	out, err = execute(t, "-a", base, "--validate")
	assert.Error(t, err)
	assert.Contains(t, out, "error: broken:")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "starfetch version "+version+"\n", out)
}

func TestInitWriteConfig(t *testing.T) {
	base := filepath.Join(t.TempDir(), "share")
	cfg := filepath.Join(t.TempDir(), "starfetch", "config.yaml")

	out, err := execute(t, "-c", cfg, "-a", base, "--init", "--write-config")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote settings to "+cfg)

	saved, err := config.Load(cfg)
	require.NoError(t, err)
	assert.Equal(t, base, saved.AssetPath)

	// the written settings are picked up without -a
	out, err = execute(t, "-c", cfg, "orion")
	require.NoError(t, err)
	assert.Contains(t, out, "Orion")

	require.NoError(t, os.WriteFile(cfg, []byte("color: never\n"), 0644))
	out, err = execute(t, "-c", cfg, "-a", base, "--init", "--write-config")
	require.NoError(t, err)
	assert.Contains(t, out, "already exists")

	data, err := os.ReadFile(cfg)
	require.NoError(t, err)
	assert.Equal(t, "color: never\n", string(data))
}

func TestInitWriteConfigDefaultPath(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--init", "--write-config"})
	require.NoError(t, cmd.ExecuteContext(context.Background()))

	_, err := os.Stat(filepath.Join(configHome, "starfetch", "config.yaml"))
	assert.NoError(t, err)
}
