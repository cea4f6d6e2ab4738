package config

import "time"

// Config holds runtime settings for the gophdocs terminal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - SessionDBPath: SQLite file the signed-in session is kept in.
//   - RefreshCheckInterval: how often the refresher looks at the session expiry.
//   - RefreshMargin: refresh once the access token expires within this margin.
//   - RequestTimeout: per-call deadline for backend requests.
//   - DownloadDir: where downloaded files are written.
//   - LogLevel: debug, info, warn or error. Logs go to stderr.
type Config struct {
	ServerEndpointAddr   string
	SessionDBPath        string
	RefreshCheckInterval time.Duration
	RefreshMargin        time.Duration
	RequestTimeout       time.Duration
	DownloadDir          string
	LogLevel             string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:3200"
	c.SessionDBPath = "session.db"
	c.RefreshCheckInterval = 30 * time.Second
	c.RefreshMargin = time.Minute
	c.RequestTimeout = 15 * time.Second
	c.DownloadDir = "."
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, JSON (if present) and command-line flags (if present).
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
