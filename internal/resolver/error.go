package resolver

import "errors"

// Error definitions for the resolver package.
var (
	ErrEmptyTheme = errors.New("configuration value game/theme is empty")
)
