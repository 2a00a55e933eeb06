package resolver

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/ekisa-team/singalong/internal/config"
	"github.com/ekisa-team/singalong/internal/xfs"
)

const themesDir = "themes"

// Resolver locates theme and data files using the configured data directories.
// Lookups that find nothing fall back to an empty substitution instead of
// failing, so callers get a well formed path that may not exist.
type Resolver struct {
	store config.Store
	isDir func(string) bool
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDirProbe replaces the directory existence check.
func WithDirProbe(isDir func(string) bool) Option {
	return func(r *Resolver) {
		r.isDir = isDir
	}
}

// New creates a Resolver reading configuration from store.
func New(store config.Store, opts ...Option) *Resolver {
	r := &Resolver{
		store: store,
		isDir: xfs.IsDir,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// ThemePath returns the path of filename inside the configured theme.
// game/theme is either a directory or a bare theme name looked up as
// <data dir>/themes/<name> in each system/path_data entry.
func (r *Resolver) ThemePath(filename string) (string, error) {
	theme := r.store.String(config.KeyGameTheme)
	if theme == "" {
		return "", ErrEmptyTheme
	}

	if !hasSeparator(theme) {
		theme = r.themeDir(theme)
	}

	if theme == "" {
		panic("resolver: theme path is empty")
	}
	theme = strings.TrimSuffix(theme, "/")

	return theme + "/" + filename, nil
}

// themeDir returns the first existing theme directory called name,
// or name itself when there is none.
func (r *Resolver) themeDir(name string) string {
	candidates := r.store.StringList(config.KeyDataPath)
	for _, dir := range candidates {
		p := themeCandidate(dir, name)
		if r.isDir(p) {
			slog.Debug("Theme resolved", "theme", name, "path", p)
			return p
		}
	}

	slog.Warn("Theme directory not found in data paths", "theme", name, "candidates", candidates)
	return name
}

// DataPath returns filename inside the first existing system/path_data
// directory. When none exists the base is empty and the result is "/<filename>".
func (r *Resolver) DataPath(filename string) string {
	return r.dataDir() + "/" + filename
}

func (r *Resolver) dataDir() string {
	candidates := r.store.StringList(config.KeyDataPath)
	for _, dir := range candidates {
		if r.isDir(dir) {
			return dir
		}
	}

	slog.Warn("No data directory found", "candidates", candidates)
	return ""
}

// themeCandidate builds <dir>/themes/<name> without cleaning dir, so that
// "a/../b" still requires "a" to exist.
func themeCandidate(dir, name string) string {
	switch {
	case dir == "":
		return themesDir + "/" + name
	case strings.HasSuffix(dir, "/"):
		return dir + themesDir + "/" + name
	default:
		return dir + "/" + themesDir + "/" + name
	}
}

func hasSeparator(p string) bool {
	return strings.ContainsRune(p, '/') || strings.ContainsRune(p, filepath.Separator)
}
