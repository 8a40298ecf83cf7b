package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/sitecms/internal/flagx"
)

var knownFlags = []string{"-a", "-d", "-w", "-t", "-l", "-degraded"}

// parseFlags overlays cfg with command-line flags.
//
//	-a string     API base URL
//	-d string     local database path
//	-w string     web consumer listen address
//	-t duration   request timeout, 0 disables it
//	-l string     log level
//	-degraded     allow access when the API is unreachable (-degraded=false to refuse)
//
// Other arguments in args are ignored.
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("sitecms", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "local database path")
	fs.StringVar(&cfg.WebAddr, "w", cfg.WebAddr, "web listen address")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.BoolVar(&cfg.AllowDegraded, "degraded", cfg.AllowDegraded, "allow access while the API is unreachable")

	return fs.Parse(flagx.FilterArgs(args, knownFlags))
}
