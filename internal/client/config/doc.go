// Package config loads runtime configuration for the socli CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API (including /api)
//	-p int      feed/comment page size
//	-t int      per-request timeout (seconds, 0 disables)
//	-d string   path of the local sqlite database
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "10s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080/api",
//	  "page_size": 10,
//	  "request_timeout": "10s",
//	  "database_path": "socli.db"
//	}
package config
