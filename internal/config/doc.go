// Package config loads and validates the TOML configuration for tessera.
package config
