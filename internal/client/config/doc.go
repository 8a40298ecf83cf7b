// Package config loads runtime configuration for the CLI and web consumers.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables SITECMS_*, with a .env file in the working
//     directory loaded first by LoadConfig.
//  3. Optional config file selected with -c or -config. JSON, or YAML when
//     the name ends in .yaml/.yml.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string     API base URL (default http://localhost:5000/api)
//	-d string     local SQLite database path
//	-w string     web consumer listen address
//	-t duration   request timeout, 0 means none
//	-l string     log level: debug, info, warn, error
//	-degraded     grant access with a local token when the API is unreachable
//
// # File schema
//
// Durations use timex.Duration, so "30s" and integer nanoseconds both work:
//
//	{
//	  "api_url": "https://cms.example.com/api",
//	  "db_path": "data/sitecms.db",
//	  "request_timeout": "30s",
//	  "allow_degraded": false
//	}
package config
