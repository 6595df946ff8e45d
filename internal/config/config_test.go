package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, 3*time.Hour, cfg.MaxIdle())
	require.Empty(t, cfg.Server.AdminToken)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
server:
  addr: ":9090"
  admin_token: s3cret
db:
  path: /tmp/test.db
sweeper:
  interval_minutes: 5
  max_idle_minutes: 60
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.Server.Addr)
	require.Equal(t, "s3cret", cfg.Server.AdminToken)
	require.Equal(t, "/tmp/test.db", cfg.DB.Path)
	require.Equal(t, 5*time.Minute, cfg.SweepInterval())

	// Unset fields keep their defaults.
	require.Equal(t, "audio", cfg.Audio.Dir)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o644))

	t.Setenv("IELTSPREP_ADDR", ":7070")
	t.Setenv("IELTSPREP_SWEEP_INTERVAL_MINUTES", "15")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.Server.Addr)
	require.Equal(t, 15, cfg.Sweeper.IntervalMinutes)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("IELTSPREP_SWEEP_INTERVAL_MINUTES", "-1")
	_, err := Load("")
	require.Error(t, err)
}

func TestLoad_MissingNamedFile(t *testing.T) {
	// A missing file is tolerated; defaults apply.
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a mapping"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}
