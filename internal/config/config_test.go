package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8000, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "inventory.db", cfg.DatabasePath)
	assert.Equal(t, "static/uploads", cfg.UploadDir)
	assert.Equal(t, "static/barcodes", cfg.BarcodeDir)
	assert.Equal(t, int64(16), cfg.MaxUploadMB)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PORT", "9100")
	t.Setenv("DATABASE_PATH", "/tmp/otra.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "/tmp/otra.db", cfg.DatabasePath)
}

func TestMaxUploadBytes(t *testing.T) {
	cfg := &Config{MaxUploadMB: 16}
	assert.Equal(t, int64(16<<20), cfg.MaxUploadBytes())
}
