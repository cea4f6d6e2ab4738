package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Seams for tests.
var (
	loadDotenv = func() error { return godotenv.Load() }
	lookupEnv  = os.LookupEnv
)

// parseEnv loads an optional .env file and overlays the GOPHDOCS_CLIENT_*
// variables that are set and non-empty.
func parseEnv(cfg *Config) {
	_ = loadDotenv()

	str := func(key string, dst *string) {
		if v, ok := lookupEnv(key); ok && v != "" {
			*dst = v
		}
	}
	dur := func(key string, dst *time.Duration) {
		if v, ok := lookupEnv(key); ok && v != "" {
			d, err := time.ParseDuration(v)
			if err != nil {
				panic(err)
			}
			*dst = d
		}
	}

	str("GOPHDOCS_CLIENT_SERVER_ADDR", &cfg.ServerEndpointAddr)
	str("GOPHDOCS_CLIENT_SESSION_DB", &cfg.SessionDBPath)
	dur("GOPHDOCS_CLIENT_REFRESH_INTERVAL", &cfg.RefreshCheckInterval)
	dur("GOPHDOCS_CLIENT_REFRESH_MARGIN", &cfg.RefreshMargin)
	dur("GOPHDOCS_CLIENT_REQUEST_TIMEOUT", &cfg.RequestTimeout)
	str("GOPHDOCS_CLIENT_DOWNLOAD_DIR", &cfg.DownloadDir)
	str("GOPHDOCS_CLIENT_LOG_LEVEL", &cfg.LogLevel)
}
