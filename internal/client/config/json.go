package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/flagx"
	"github.com/dmitrijs2005/gophdocs/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Intervals
// use timex.Duration, so "30s" and integer nanoseconds both work.
type JsonConfig struct {
	ServerEndpointAddr   string         `json:"server_endpoint_addr"`
	SessionDBPath        string         `json:"session_db_path"`
	RefreshCheckInterval timex.Duration `json:"refresh_check_interval"`
	RefreshMargin        timex.Duration `json:"refresh_margin"`
	RequestTimeout       timex.Duration `json:"request_timeout"`
	DownloadDir          string         `json:"download_dir"`
	LogLevel             string         `json:"log_level"`
}

// parseJson overlays Config with values from the JSON file given by -c or
// -config. Only non-empty values are copied. Read or unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	str := func(v string, dst *string) {
		if v != "" {
			*dst = v
		}
	}
	dur := func(v timex.Duration, dst *time.Duration) {
		if v.Duration != 0 {
			*dst = v.Duration
		}
	}

	str(jc.ServerEndpointAddr, &cfg.ServerEndpointAddr)
	str(jc.SessionDBPath, &cfg.SessionDBPath)
	dur(jc.RefreshCheckInterval, &cfg.RefreshCheckInterval)
	dur(jc.RefreshMargin, &cfg.RefreshMargin)
	dur(jc.RequestTimeout, &cfg.RequestTimeout)
	str(jc.DownloadDir, &cfg.DownloadDir)
	str(jc.LogLevel, &cfg.LogLevel)
}
