package config

import "errors"

// Configuration errors.
var (
	// ErrUnknownKey indicates the TOML document contains keys the schema
	// does not define.
	ErrUnknownKey = errors.New("unknown configuration key")

	// ErrInvalidValue indicates a configuration value is out of range or
	// malformed.
	ErrInvalidValue = errors.New("invalid configuration value")
)
