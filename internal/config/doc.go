// Package config provides environment-based configuration.
//
// Values are resolved from the process environment first, then from an
// optional TOML secrets file (local development stand-in for the hosting
// provider's secret store), then defaults. A .env file is loaded via
// godotenv as a dev convenience. Startup fails before any connection is
// attempted when a required value is missing.
package config
