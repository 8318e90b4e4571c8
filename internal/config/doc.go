// Package config loads, normalizes, and validates p2mark configuration data.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files, and honours the P2MARK_STATE_DIR and P2MARK_LOG_LEVEL
// environment overrides. Every setting has a usable default, so running
// without a config file is the normal case.
//
// Always obtain settings through this package so downstream code receives
// expanded paths, upper-case extensions, and clear validation errors.
package config
