package resolver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ekisa-team/singalong/internal/config"
)

// --- Mock types ---

type MockStore struct {
	mock.Mock
}

func (m *MockStore) String(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func (m *MockStore) StringList(key string) []string {
	args := m.Called(key)
	if list, ok := args.Get(0).([]string); ok {
		return list
	}
	return nil
}

// dirs returns a probe reporting only the given paths as directories.
func dirs(existing ...string) Option {
	set := make(map[string]bool, len(existing))
	for _, d := range existing {
		set[d] = true
	}
	return WithDirProbe(func(p string) bool { return set[p] })
}

// --- Tests ---

func TestResolver_ThemePath_EmptyTheme(t *testing.T) {
	store := new(MockStore)
	store.On("String", config.KeyGameTheme).Return("")

	_, err := New(store).ThemePath("foo.png")

	assert.ErrorIs(t, err, ErrEmptyTheme)
	assert.EqualError(t, err, "configuration value game/theme is empty")
	store.AssertExpectations(t)
	store.AssertNotCalled(t, "StringList", config.KeyDataPath)
}

func TestResolver_ThemePath_BareNameFirstMatch(t *testing.T) {
	store := new(MockStore)
	store.On("String", config.KeyGameTheme).Return("mytheme")
	store.On("StringList", config.KeyDataPath).Return([]string{"/a", "/b", "/c"})

	got, err := New(store, dirs("/b/themes/mytheme", "/c/themes/mytheme")).ThemePath("foo.png")

	require.NoError(t, err)
	assert.Equal(t, "/b/themes/mytheme/foo.png", got)
	store.AssertExpectations(t)
}

func TestResolver_ThemePath_BareNameNotFound(t *testing.T) {
	store := new(MockStore)
	store.On("String", config.KeyGameTheme).Return("mytheme")
	store.On("StringList", config.KeyDataPath).Return([]string{"/a", "/b"})

	got, err := New(store, dirs()).ThemePath("foo.png")

	require.NoError(t, err)
	assert.Equal(t, "mytheme/foo.png", got)
}

func TestResolver_ThemePath_CandidatesNotCleaned(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		existing []string
		want     string
	}{
		{name: "dot prefix kept", dir: "./data", existing: []string{"./data/themes/neon"}, want: "./data/themes/neon/f.png"},
		{name: "dot dot kept", dir: "a/../b", existing: []string{"a/../b/themes/neon"}, want: "a/../b/themes/neon/f.png"},
		{name: "dot dot not collapsed", dir: "a/../b", existing: []string{"b/themes/neon"}, want: "neon/f.png"},
		{name: "trailing slash", dir: "/data/", existing: []string{"/data/themes/neon"}, want: "/data/themes/neon/f.png"},
		{name: "root", dir: "/", existing: []string{"/themes/neon"}, want: "/themes/neon/f.png"},
		{name: "empty candidate", dir: "", existing: []string{"themes/neon"}, want: "themes/neon/f.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("String", config.KeyGameTheme).Return("neon")
			store.On("StringList", config.KeyDataPath).Return([]string{tt.dir})

			got, err := New(store, dirs(tt.existing...)).ThemePath("f.png")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolver_ThemePath_Directory(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  string
	}{
		{name: "trailing slash stripped", theme: "/abs/theme/", want: "/abs/theme/foo.png"},
		{name: "no trailing slash", theme: "/abs/theme", want: "/abs/theme/foo.png"},
		{name: "only one slash stripped", theme: "/abs/theme//", want: "/abs/theme//foo.png"},
		{name: "relative directory", theme: "themes/retro", want: "themes/retro/foo.png"},
		{name: "root", theme: "/", want: "/foo.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("String", config.KeyGameTheme).Return(tt.theme)

			got, err := New(store, dirs()).ThemePath("foo.png")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			store.AssertNotCalled(t, "StringList", config.KeyDataPath)
		})
	}
}

func TestResolver_DataPath(t *testing.T) {
	tests := []struct {
		name     string
		paths    []string
		existing []string
		want     string
	}{
		{name: "first existing wins", paths: []string{"/nonexistent", "/data", "/other"}, existing: []string{"/data", "/other"}, want: "/data/x.txt"},
		{name: "order preserved", paths: []string{"/other", "/data"}, existing: []string{"/data", "/other"}, want: "/other/x.txt"},
		{name: "none exist", paths: []string{"/nonexistent"}, want: "/x.txt"},
		{name: "no candidates", paths: nil, want: "/x.txt"},
		{name: "base used verbatim", paths: []string{"/data/"}, existing: []string{"/data/"}, want: "/data//x.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			store.On("StringList", config.KeyDataPath).Return(tt.paths)

			got := New(store, dirs(tt.existing...)).DataPath("x.txt")

			assert.Equal(t, tt.want, got)
			store.AssertExpectations(t)
		})
	}
}

func TestResolver_Filesystem(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "missing")
	first := filepath.Join(root, "first")
	second := filepath.Join(root, "second")
	require.NoError(t, os.MkdirAll(first, 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(second, "themes", "neon"), 0o755))

	cfg := config.New(nil)
	cfg.Set(config.KeyGameTheme, "neon")
	cfg.Set(config.KeyDataPath, []string{missing, first, second})

	r := New(cfg)

	theme, err := r.ThemePath("menu.svg")
	require.NoError(t, err)
	assert.Equal(t, second+"/themes/neon/menu.svg", theme)
	assert.Equal(t, first+"/fonts/sans.ttf", r.DataPath("fonts/sans.ttf"))
}

func TestResolver_Filesystem_ParentOfMissingDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "second", "themes", "neon"), 0o755))

	cfg := config.New(nil)
	cfg.Set(config.KeyGameTheme, "neon")
	cfg.Set(config.KeyDataPath, []string{root + "/missing/../second"})

	got, err := New(cfg).ThemePath("menu.svg")

	require.NoError(t, err)
	assert.Equal(t, "neon/menu.svg", got)
}
