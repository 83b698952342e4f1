package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
app:
  env: dev
  timezone: America/Bogota
http:
  addr: ":9090"
metrics:
  enabled: false
telegram:
  token: abc
  admin_chat_id: -100123
inventory:
  alert_on: [critical]
`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "dev", c.App.Env)
	assert.Equal(t, ":9090", c.HTTP.Addr)
	assert.False(t, c.Metrics.Enabled)
	assert.Equal(t, "abc", c.Telegram.Token)
	assert.Equal(t, int64(-100123), c.Telegram.AdminChatID)
	assert.Equal(t, []string{"critical"}, c.Inventory.AlertOn)

	loc, err := c.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Bogota", loc.String())
}

func TestLoadDefaults(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, "UTC", c.App.Timezone)
	assert.True(t, c.Metrics.Enabled)
	assert.Empty(t, c.Postgres.DSN)
	assert.Equal(t, []string{"critical", "low"}, c.Inventory.AlertOn)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":9090\"\n")
	t.Setenv("APP_HTTP_ADDR", ":7070")
	t.Setenv("APP_POSTGRES_DSN", "postgres://localhost/concretrack")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c.HTTP.Addr)
	assert.Equal(t, "postgres://localhost/concretrack", c.Postgres.DSN)
}

func TestLoadBadTimezone(t *testing.T) {
	path := writeConfig(t, "app:\n  timezone: Mars/Olympus\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "app.timezone")
}
