package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFileReturnsDefaultsWhenMissing(t *testing.T) {
	cfg, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "", cfg.StartDir)
	assert.Equal(t, "", cfg.ResultFile)
	assert.False(t, cfg.ShowHidden)
	assert.Equal(t, "", cfg.DebugLog)
}

func TestLoadConfigFileReadsAllFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
start_dir: /srv/projects
result_file: /tmp/custom-cd.txt
show_hidden: true
debug_log: /tmp/dune.log
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/srv/projects", cfg.StartDir)
	assert.Equal(t, "/tmp/custom-cd.txt", cfg.ResultFile)
	assert.True(t, cfg.ShowHidden)
	assert.Equal(t, "/tmp/dune.log", cfg.DebugLog)
}

func TestLoadConfigFilePartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_dir: /home/kim\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)

	assert.Equal(t, "/home/kim", cfg.StartDir)
	assert.Equal(t, "", cfg.ResultFile)
	assert.False(t, cfg.ShowHidden)
}

func TestLoadConfigFileRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_dir: [unclosed\n"), 0o644))

	_, err := LoadConfigFile(path)
	assert.Error(t, err)
}
