package config

import (
	"fmt"
	"strconv"
	"time"
)

const (
	EnvAPIURL         = "SITECMS_API_URL"
	EnvDatabasePath   = "SITECMS_DB_PATH"
	EnvRequestTimeout = "SITECMS_REQUEST_TIMEOUT"
	EnvAllowDegraded  = "SITECMS_ALLOW_DEGRADED"
	EnvLogLevel       = "SITECMS_LOG_LEVEL"
	EnvWebAddr        = "SITECMS_WEB_ADDR"
	EnvSessionSecret  = "SITECMS_SESSION_SECRET"
	EnvSecureCookies  = "SITECMS_SECURE_COOKIES"
)

func parseEnv(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := getenv(EnvDatabasePath); v != "" {
		cfg.DatabasePath = v
	}
	if v := getenv(EnvRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvRequestTimeout, err)
		}
		cfg.RequestTimeout = d
	}
	if v := getenv(EnvAllowDegraded); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAllowDegraded, err)
		}
		cfg.AllowDegraded = b
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvWebAddr); v != "" {
		cfg.WebAddr = v
	}
	if v := getenv(EnvSessionSecret); v != "" {
		cfg.SessionSecret = v
	}
	if v := getenv(EnvSecureCookies); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSecureCookies, err)
		}
		cfg.SecureCookies = b
	}
	return nil
}
