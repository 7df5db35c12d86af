package config_test

import (
	"testing"

	"save-editor/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Server.ApiKey)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "save-editor.db", cfg.Database.Path)
	assert.Equal(t, "backups", cfg.Storage.BackupPrefix)
	assert.False(t, cfg.Storage.Enabled())
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("STORAGE_ENDPOINT", "minio:9000")
	t.Setenv("STORAGE_BUCKET", "saves")
	t.Setenv("DATABASE_DRIVER", "mysql")

	cfg, err := config.LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.True(t, cfg.Storage.Enabled())
}
