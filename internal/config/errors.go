package config

import "errors"

// Sentinel errors for the config package.
// Use errors.Is to check: errors.Is(err, config.ErrUnknownKind)
var (
	ErrEmptyConfig   = errors.New("config: payload is empty")
	ErrUnknownKind   = errors.New("config: unknown scheduler kind")
	ErrInvalidConfig = errors.New("config: invalid scheduler config")
)
