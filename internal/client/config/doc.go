// Package config loads runtime configuration for the gophdocs CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: an optional .env file, then GOPHDOCS_CLIENT_* variables.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:3200",
//	  "session_db_path": "session.db",
//	  "refresh_check_interval": "30s",
//	  "refresh_margin": "1m",
//	  "request_timeout": "15s",
//	  "download_dir": "~/Downloads",
//	  "log_level": "warn"
//	}
package config
