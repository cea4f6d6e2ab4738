package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/gophdocs/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port of the backend server
//	-d string   session database file
//	-i int      session refresh check interval (in seconds)
//	-m int      refresh margin before access token expiry (in seconds)
//	-t int      request timeout (in seconds)
//	-o string   download directory
//	-l string   log level
//
// Note: os.Args is filtered with flagx.FilterArgs so flags meant for other
// components do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-i", "-m", "-t", "-o", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database file")
	refreshInterval := fs.Int("i", int(cfg.RefreshCheckInterval.Seconds()), "session refresh check interval (in seconds)")
	refreshMargin := fs.Int("m", int(cfg.RefreshMargin.Seconds()), "refresh margin (in seconds)")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.DownloadDir, "o", cfg.DownloadDir, "download directory")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshCheckInterval = time.Duration(*refreshInterval) * time.Second
	cfg.RefreshMargin = time.Duration(*refreshMargin) * time.Second
	cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
