// Package config handles configuration for the development API server,
// including defaults, environment, an optional config file and flags.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the development API.
//
// Fields:
//   - Addr: listen address of the HTTP server.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenTTL: lifetime of issued tokens.
//   - AdminUsername / AdminPassword: the single admin account seeded at start.
//   - PublicURL: absolute prefix of URLs returned for uploads kept in memory.
//   - S3Bucket: enables S3 upload storage when not empty.
//   - S3Region / S3BaseEndpoint / S3AccessKey / S3SecretKey: S3-compatible backend settings.
type Config struct {
	Addr          string
	SecretKey     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string
	PublicURL     string
	LogLevel      string

	S3Bucket       string
	S3Region       string
	S3BaseEndpoint string
	S3AccessKey    string
	S3SecretKey    string
}

// Built-in credentials. They are fine on a laptop and nowhere else.
const (
	DefaultSecretKey     = "secretKey"
	DefaultAdminPassword = "admin123"
)

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.Addr = ":5000"
	c.SecretKey = DefaultSecretKey
	c.TokenTTL = 24 * time.Hour
	c.AdminUsername = "admin"
	c.AdminPassword = DefaultAdminPassword
	c.PublicURL = "http://localhost:5000"
	c.LogLevel = "info"
	c.S3Bucket = ""
	c.S3Region = "us-east-1"
	c.S3BaseEndpoint = "http://127.0.0.1:9000/"
	c.S3AccessKey = "admin"
	c.S3SecretKey = "secretpassword"
}

// InsecureDefaults names the settings still holding a built-in secret.
func (c *Config) InsecureDefaults() []string {
	var names []string
	if c.SecretKey == DefaultSecretKey {
		names = append(names, EnvSecretKey)
	}
	if c.AdminPassword == DefaultAdminPassword {
		names = append(names, EnvAdminPassword)
	}
	return names
}

// UseS3 reports whether uploads go to S3-compatible storage.
func (c *Config) UseS3() bool {
	return c.S3Bucket != ""
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
	if cfg.TokenTTL <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", cfg.TokenTTL)
	}
	return cfg, nil
}

// LoadConfig loads .env when present, then calls Load with the process
// arguments and environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return Load(os.Args[1:], os.Getenv)
}
