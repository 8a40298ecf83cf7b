package config

import (
	"github.com/dmitrijs2005/sitecms/internal/filex"
	"github.com/dmitrijs2005/sitecms/internal/flagx"
	"github.com/dmitrijs2005/sitecms/internal/timex"
)

// fileConfig is the on-disk shape. Absent keys leave the current value alone.
type fileConfig struct {
	APIBaseURL     *string         `json:"api_url" yaml:"api_url"`
	DatabasePath   *string         `json:"db_path" yaml:"db_path"`
	RequestTimeout *timex.Duration `json:"request_timeout" yaml:"request_timeout"`
	AllowDegraded  *bool           `json:"allow_degraded" yaml:"allow_degraded"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	WebAddr        *string         `json:"web_addr" yaml:"web_addr"`
	SessionSecret  *string         `json:"session_secret" yaml:"session_secret"`
	SecureCookies  *bool           `json:"secure_cookies" yaml:"secure_cookies"`
}

func parseFile(cfg *Config, args []string) error {
	path := flagx.ConfigFileFlag(args)
	if path == "" {
		return nil
	}

	var fc fileConfig
	if err := filex.DecodeFile(path, &fc); err != nil {
		return err
	}

	setString(&cfg.APIBaseURL, fc.APIBaseURL)
	setString(&cfg.DatabasePath, fc.DatabasePath)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.WebAddr, fc.WebAddr)
	setString(&cfg.SessionSecret, fc.SessionSecret)
	if fc.RequestTimeout != nil {
		cfg.RequestTimeout = fc.RequestTimeout.Duration
	}
	if fc.AllowDegraded != nil {
		cfg.AllowDegraded = *fc.AllowDegraded
	}
	if fc.SecureCookies != nil {
		cfg.SecureCookies = *fc.SecureCookies
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
