package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid token settings (missing or
	// identical signing keys, missing issuer, zero durations).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (empty database DSN, missing blob bucket or region).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidServerConfigs indicates invalid server settings
	// (missing listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
