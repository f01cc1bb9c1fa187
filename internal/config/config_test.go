package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()
	t.Chdir(t.TempDir())

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 640, cfg.HangarWidth)
	assert.Equal(t, 480, cfg.HangarHeight)
	assert.Equal(t, 10, cfg.CellWidth)
	assert.Equal(t, 20, cfg.CellHeight)
	assert.Equal(t, "hangar-service", cfg.OTelServiceName)
	assert.Equal(t, "http://localhost:4318", cfg.OTelEndpoint)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.LogDir)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_PORT", "9090")
	t.Setenv("HANGAR_WIDTH", "1050")
	t.Setenv("HANGAR_HEIGHT", "320")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 1050, cfg.HangarWidth)
	assert.Equal(t, 320, cfg.HangarHeight)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestInvalidNumericFallsBackToDefault(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HANGAR_WIDTH", "wide")
	t.Setenv("CELL_HEIGHT", "abc")

	cfg := Load()

	assert.Equal(t, 640, cfg.HangarWidth)
	assert.Equal(t, 20, cfg.CellHeight)
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HANGAR_WIDTH=420\nOTEL_SERVICE_NAME=dotenv-hangar\n"), 0o644))
	t.Setenv("OTEL_SERVICE_NAME", "from-env")
	t.Setenv("HANGAR_WIDTH", "")
	require.NoError(t, os.Unsetenv("HANGAR_WIDTH"))

	cfg := Load()

	assert.Equal(t, 420, cfg.HangarWidth)
	assert.Equal(t, "from-env", cfg.OTelServiceName)
}
