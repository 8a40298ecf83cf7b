package config

import (
	"fmt"
	"time"
)

const (
	EnvAddr           = "SITECMS_SERVER_ADDR"
	EnvSecretKey      = "SITECMS_SECRET_KEY"
	EnvTokenTTL       = "SITECMS_TOKEN_TTL"
	EnvAdminUsername  = "SITECMS_ADMIN_USERNAME"
	EnvAdminPassword  = "SITECMS_ADMIN_PASSWORD"
	EnvPublicURL      = "SITECMS_PUBLIC_URL"
	EnvLogLevel       = "SITECMS_LOG_LEVEL"
	EnvS3Bucket       = "SITECMS_S3_BUCKET"
	EnvS3Region       = "SITECMS_S3_REGION"
	EnvS3BaseEndpoint = "SITECMS_S3_ENDPOINT"
	EnvS3AccessKey    = "SITECMS_S3_ACCESS_KEY"
	EnvS3SecretKey    = "SITECMS_S3_SECRET_KEY"
)

func parseEnv(cfg *Config, getenv func(string) string) error {
	strs := []struct {
		name string
		dst  *string
	}{
		{EnvAddr, &cfg.Addr},
		{EnvSecretKey, &cfg.SecretKey},
		{EnvAdminUsername, &cfg.AdminUsername},
		{EnvAdminPassword, &cfg.AdminPassword},
		{EnvPublicURL, &cfg.PublicURL},
		{EnvLogLevel, &cfg.LogLevel},
		{EnvS3Bucket, &cfg.S3Bucket},
		{EnvS3Region, &cfg.S3Region},
		{EnvS3BaseEndpoint, &cfg.S3BaseEndpoint},
		{EnvS3AccessKey, &cfg.S3AccessKey},
		{EnvS3SecretKey, &cfg.S3SecretKey},
	}
	for _, s := range strs {
		if v := getenv(s.name); v != "" {
			*s.dst = v
		}
	}

	if v := getenv(EnvTokenTTL); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTokenTTL, err)
		}
		cfg.TokenTTL = d
	}
	return nil
}
