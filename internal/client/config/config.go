package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// DefaultSessionSecret signs web sessions when nothing else is configured.
// Cookies signed with it can be forged by anyone who has read this file.
const DefaultSessionSecret = "sitecms-dev-session-secret"

// Config holds runtime settings shared by the CLI and the web consumer.
type Config struct {
	APIBaseURL     string
	DatabasePath   string
	RequestTimeout time.Duration
	AllowDegraded  bool
	LogLevel       string
	WebAddr        string
	SessionSecret  string
	SecureCookies  bool
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.DatabasePath = "data/sitecms.db"
	c.RequestTimeout = 0
	c.AllowDegraded = true
	c.LogLevel = "info"
	c.WebAddr = ":8080"
	c.SessionSecret = DefaultSessionSecret
	c.SecureCookies = false
}

// UsesDefaultSessionSecret reports whether the built-in session secret is
// still in effect.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}

// Load builds a Config from defaults, the environment, an optional config
// file named by -c/-config and finally the command-line flags in args.
func Load(args []string, getenv func(string) string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg, getenv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	if err := parseFile(cfg, args); err != nil {
		return nil, fmt.Errorf("config file: %w", err)
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// LoadConfig loads .env from the working directory when present and then
// calls Load with the process arguments and environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Load(os.Args[1:], os.Getenv)
}
