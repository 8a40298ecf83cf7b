package config

import (
	"github.com/dmitrijs2005/sitecms/internal/filex"
	"github.com/dmitrijs2005/sitecms/internal/flagx"
	"github.com/dmitrijs2005/sitecms/internal/timex"
)

// fileConfig is the on-disk shape. Durations accept "15m" or nanoseconds.
type fileConfig struct {
	Addr           *string         `json:"addr" yaml:"addr"`
	SecretKey      *string         `json:"secret_key" yaml:"secret_key"`
	TokenTTL       *timex.Duration `json:"token_ttl" yaml:"token_ttl"`
	AdminUsername  *string         `json:"admin_username" yaml:"admin_username"`
	AdminPassword  *string         `json:"admin_password" yaml:"admin_password"`
	PublicURL      *string         `json:"public_url" yaml:"public_url"`
	LogLevel       *string         `json:"log_level" yaml:"log_level"`
	S3Bucket       *string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region       *string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint *string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3AccessKey    *string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey    *string         `json:"s3_secret_key" yaml:"s3_secret_key"`
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

	setString(&cfg.Addr, fc.Addr)
	setString(&cfg.SecretKey, fc.SecretKey)
	setString(&cfg.AdminUsername, fc.AdminUsername)
	setString(&cfg.AdminPassword, fc.AdminPassword)
	setString(&cfg.PublicURL, fc.PublicURL)
	setString(&cfg.LogLevel, fc.LogLevel)
	setString(&cfg.S3Bucket, fc.S3Bucket)
	setString(&cfg.S3Region, fc.S3Region)
	setString(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, fc.S3AccessKey)
	setString(&cfg.S3SecretKey, fc.S3SecretKey)
	if fc.TokenTTL != nil {
		cfg.TokenTTL = fc.TokenTTL.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
