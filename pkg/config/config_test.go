package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paydesk.yaml")
	err := os.WriteFile(path, []byte(`
ledger:
  settlement_delay: 5s
  seed: false
links:
  base_url: https://pay.example.com
export:
  out: jsonfile:/tmp/out.json
`), 0o600)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.Ledger.SettlementDelay)
	assert.False(t, cfg.Ledger.Seed)
	assert.Equal(t, "https://pay.example.com", cfg.Links.BaseURL)
	assert.Equal(t, "jsonfile:/tmp/out.json", cfg.Export.Out)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "paydesk.yaml")
	cfg := Default()
	cfg.Links.SigningKey = "0123456789abcdef0123456789abcdef"

	require.NoError(t, Write(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(envDelay, "250ms")
	t.Setenv(envOut, "sqlite:/tmp/x.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Ledger.SettlementDelay)
	assert.Equal(t, "sqlite:/tmp/x.db", cfg.Export.Out)

	t.Setenv(envDelay, "soon")
	_, err = Load("")
	assert.Error(t, err)
}

func TestLoadFileSkipsEnv(t *testing.T) {
	t.Setenv(envOut, "sqlite:/tmp/x.db")

	cfg, err := LoadFile("")
	require.NoError(t, err)
	assert.Equal(t, "", cfg.Export.Out)
}
