package config

import "github.com/ekisa-team/singalong/mapsafe"

// Configuration keys read by the application.
const (
	KeyGameTheme = "game/theme"
	KeyDataPath  = "system/path_data"
	KeyLogLevel  = "log/level"
	KeyLogFile   = "log/file"
)

// Store looks up configuration values by slash separated key.
// Missing keys yield the zero value.
type Store interface {
	String(key string) string
	StringList(key string) []string
}

// Config holds the loaded configuration document.
type Config struct {
	values map[string]any
}

// New wraps an already decoded configuration document.
// A nil document behaves like an empty one.
func New(values map[string]any) *Config {
	if values == nil {
		values = make(map[string]any)
	}

	return &Config{values: values}
}

// String returns the scalar string stored at key.
func (c *Config) String(key string) string {
	return mapsafe.GetPath(c.values, key, "")
}

// StringList returns the string list stored at key, in configuration order.
func (c *Config) StringList(key string) []string {
	return mapsafe.Strings(c.values, key)
}

// Has reports whether key is present in the document.
func (c *Config) Has(key string) bool {
	_, ok := mapsafe.Lookup(c.values, key)
	return ok
}

// Set overrides the value stored at key.
func (c *Config) Set(key string, value any) {
	mapsafe.Set(c.values, key, value)
}
