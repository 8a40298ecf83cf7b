package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/sitecms/internal/flagx"
)

var knownFlags = []string{"-a", "-s", "-t", "-u", "-p", "-url", "-l", "-b", "-g", "-e"}

// parseFlags overlays cfg with command-line flags.
//
// Supported flags (short forms):
//
//	-a string   address and port to listen on (e.g., ":5000")
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-u string   admin username
//	-p string   admin password
//	-url string public URL prefix for in-memory uploads
//	-l string   log level
//	-b string   S3 bucket name, enables S3 uploads
//	-g string   S3 region
//	-e string   S3 base endpoint (e.g., "http://127.0.0.1:9000/")
func parseFlags(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("sitecms-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	ttl := fs.Int("t", int(cfg.TokenTTL.Minutes()), "token validity (in minutes)")
	fs.StringVar(&cfg.AdminUsername, "u", cfg.AdminUsername, "admin username")
	fs.StringVar(&cfg.AdminPassword, "p", cfg.AdminPassword, "admin password")
	fs.StringVar(&cfg.PublicURL, "url", cfg.PublicURL, "public URL")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.S3Bucket, "b", cfg.S3Bucket, "S3 bucket")
	fs.StringVar(&cfg.S3Region, "g", cfg.S3Region, "S3 region")
	fs.StringVar(&cfg.S3BaseEndpoint, "e", cfg.S3BaseEndpoint, "S3 base endpoint")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	if set(fs, "t") {
		cfg.TokenTTL = time.Duration(*ttl) * time.Minute
	}
	return nil
}

func set(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}
