package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	// when
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	// then
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "timelogger", cfg.Database.Schema)
	assert.Equal(t, 6, cfg.Reports.MonthsBack)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	content := "db:\n  host: db.internal\n  name: hours\nreports:\n  monthsback: 12\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("TIMELOGGER_SERVER_PORT", "5123")
	t.Setenv("TIMELOGGER_DB_NAME", "fromenv")

	// when
	cfg, err := Load(path)

	// then
	require.NoError(t, err)
	assert.Equal(t, 5123, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "fromenv", cfg.Database.Name)
	assert.Equal(t, 12, cfg.Reports.MonthsBack)
}

func TestLoad_InvalidYaml(t *testing.T) {
	// given
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db: [unclosed"), 0o600))

	// when
	_, err := Load(path)

	// then
	assert.Error(t, err)
}
