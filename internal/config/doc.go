// Package config loads, normalizes, and validates marquee configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// TMDB_API_KEY and MARQUEE_SMTP_PASSWORD. The Config type centralizes every
// knob the CLI needs: the tracked director list, archive location, filter
// rules, and notification transports.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, ready-to-compile filter patterns, and clear validation
// errors.
package config
