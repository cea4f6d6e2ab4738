package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubEnv(t *testing.T, env map[string]string) {
	t.Helper()
	origLoad, origLookup := loadDotenv, lookupEnv
	loadDotenv = func() error { return nil }
	lookupEnv = func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	t.Cleanup(func() { loadDotenv, lookupEnv = origLoad, origLookup })
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:3200", c.ServerEndpointAddr)
	assert.Equal(t, "session.db", c.SessionDBPath)
	assert.Equal(t, 30*time.Second, c.RefreshCheckInterval)
	assert.Equal(t, time.Minute, c.RefreshMargin)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "warn", c.LogLevel)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"gophdocs"}
	stubEnv(t, nil)

	cfg := LoadConfig()
	require.NotNil(t, cfg, "LoadConfig must not return nil")

	var want Config
	want.LoadDefaults()
	assert.Equal(t, want, *cfg)
}

func TestLoadConfig_Precedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempJSON(t, "", "", map[string]any{
		"server_endpoint_addr": "json:1",
		"session_db_path":      "json.db",
	})
	os.Args = []string{"gophdocs", "-c", path, "-a", "flag:2"}
	stubEnv(t, map[string]string{
		"GOPHDOCS_CLIENT_SERVER_ADDR": "env:0",
		"GOPHDOCS_CLIENT_LOG_LEVEL":   "debug",
	})

	cfg := LoadConfig()
	assert.Equal(t, "flag:2", cfg.ServerEndpointAddr)
	assert.Equal(t, "json.db", cfg.SessionDBPath)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestParseEnv(t *testing.T) {
	stubEnv(t, map[string]string{
		"GOPHDOCS_CLIENT_REFRESH_MARGIN":  "2m",
		"GOPHDOCS_CLIENT_REQUEST_TIMEOUT": "",
		"GOPHDOCS_CLIENT_DOWNLOAD_DIR":    "/tmp/dl",
	})

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 2*time.Minute, c.RefreshMargin)
	assert.Equal(t, 15*time.Second, c.RequestTimeout, "empty values are ignored")
	assert.Equal(t, "/tmp/dl", c.DownloadDir)

	stubEnv(t, map[string]string{"GOPHDOCS_CLIENT_REFRESH_INTERVAL": "often"})
	require.Panics(t, func() { parseEnv(&c) })
}
