package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestReadDefaultsAndFile(t *testing.T) {
	p := writeConfig(t, `
app:
  http:
    port: 9090
auth:
  realm: planet
db:
  driver: sqlite
  dsn: file::memory:
limits:
  cors_origins: [http://a.test, http://b.test]
`)
	c, err := Read(p)
	require.NoError(t, err)
	require.Equal(t, 9090, c.App.HTTP.Port)
	require.Equal(t, 8081, c.App.Admin.Port)
	require.Equal(t, "planet", c.Auth.Realm)
	require.Equal(t, 60, c.Auth.LeewaySec)
	require.Equal(t, "sqlite", c.DB.Driver)
	require.True(t, c.Completion.Idempotent)
	require.Equal(t, int64(300), c.Limits.MaxConcurrent)
	require.Equal(t, []string{"http://a.test", "http://b.test"}, c.Limits.CORSOrigins)
}

func TestReadEnvOverride(t *testing.T) {
	p := writeConfig(t, "completion:\n  idempotent: true\ndb:\n  dsn: from-file\n")
	t.Setenv("APP_DB_DSN", "from-env")
	t.Setenv("APP_COMPLETION_IDEMPOTENT", "false")

	c, err := Read(p)
	require.NoError(t, err)
	require.Equal(t, "from-env", c.DB.DSN)
	require.False(t, c.Completion.Idempotent)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestShippedLocalConfig(t *testing.T) {
	c, err := Read("../../../configs/config.local.yaml")
	require.NoError(t, err)
	require.Equal(t, "myplanetplan", c.Auth.Realm)
	require.Equal(t, "postgres", c.DB.Driver)
}
