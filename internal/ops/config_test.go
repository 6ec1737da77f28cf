package ops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	loaded, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), loaded.Risk.MaxOrderSize)
	assert.Equal(t, int64(2000), loaded.Risk.MaxPosition)
	assert.Equal(t, 4, loaded.Generator.InvalidEvery)
	assert.Equal(t, "trading_events.json", loaded.EventLogPath)
	assert.False(t, loaded.Postgres.Enabled)
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `{
		"risk": {"maxOrderSize": 500, "maxPosition": 800},
		"generator": {"seed": 9, "maxQty": 600, "symbols": ["IBM"]},
		"eventLog": {"path": "out/events.json"},
		"postgres": {"enabled": true, "host": "db", "database": "events"}
	}`)

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(500), loaded.Risk.MaxOrderSize)
	assert.Equal(t, int64(800), loaded.Risk.MaxPosition)
	assert.Equal(t, int64(9), loaded.Generator.Seed)
	assert.Equal(t, []string{"IBM"}, loaded.Generator.Symbols)
	assert.Equal(t, "out/events.json", loaded.EventLogPath)
	assert.True(t, loaded.Postgres.Enabled)
	assert.Equal(t, "db", loaded.Postgres.Host)
}

func TestLoadRejectsBadLimits(t *testing.T) {
	path := writeConfig(t, `{"risk": {"maxOrderSize": 0, "maxPosition": 2000}}`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := writeConfig(t, `{"risk":`)
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
