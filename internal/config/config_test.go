package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "", cfg.Log.File)
	assert.False(t, cfg.Save.Backup)
	assert.Equal(t, ".bak", cfg.Save.BackupSuffix)
}

func TestLoad_WithConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "msbctl.json")
	cfg := `{
		"log": { "level": "debug", "format": "json" },
		"save": { "backup": true, "backupSuffix": ".orig" }
	}`
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0644))

	got, err := Load(New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", got.Log.Level)
	assert.Equal(t, "json", got.Log.Format)
	assert.True(t, got.Save.Backup)
	assert.Equal(t, ".orig", got.Save.BackupSuffix)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msbctl.yaml")
	require.NoError(t, os.WriteFile(path, []byte("save:\n  backup: true\n"), 0644))

	got, err := Load(New(), path)
	require.NoError(t, err)
	assert.True(t, got.Save.Backup)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msbctl.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log": {"level": "debug"}}`), 0644))
	t.Setenv("MSBCTL_LOG_LEVEL", "error")
	t.Setenv("MSBCTL_SAVE_BACKUP", "true")

	got, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "error", got.Log.Level)
	assert.True(t, got.Save.Backup)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "msbctl.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0644))

	_, err := Load(New(), path)
	assert.Error(t, err)
}
