package config

import "errors"

// Error definitions for the config package.
var (
	ErrInvalidFormat = errors.New("configuration document is not a mapping")
)
