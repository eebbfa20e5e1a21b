package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"LashMap/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, state.DefaultViewport, cfg.ViewportSize())
	assert.Equal(t, 500*time.Millisecond, cfg.Debounce())
}

func TestLoadOverridesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
debounce_ms = 250
save_file = "/tmp/eyes.json"

[stroke]
color = "blue"
width = -1

[viewport]
width = 0

[mirror]
port = 9000
advertise = false
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.Debounce())
	assert.Equal(t, "/tmp/eyes.json", cfg.SaveFile)
	assert.Equal(t, "blue", cfg.Stroke.Color)
	assert.Equal(t, 2.0, cfg.Stroke.Width)
	assert.Equal(t, state.DefaultViewport, cfg.ViewportSize())
	assert.Equal(t, 9000, cfg.Mirror.Port)
	assert.False(t, cfg.Mirror.Advertise)
}

func TestLoadRejectsBadToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.toml")
	require.NoError(t, os.WriteFile(path, []byte("debounce_ms = ["), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "c.toml")
	cfg := Default()
	cfg.Background = "eyes.png"
	cfg.Mirror.Port = 7001
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestPathHonoursEnv(t *testing.T) {
	t.Setenv("LASHMAP_CONFIG", "/etc/lashmap.toml")
	assert.Equal(t, "/etc/lashmap.toml", Path())
}
