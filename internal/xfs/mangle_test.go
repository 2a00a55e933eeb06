package xfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMangle(t *testing.T) {
	tests := []struct {
		name string
		path string
		home string
		want string
	}{
		{name: "absolute path untouched", path: "/usr/share/singalong", home: "/home/u", want: "/usr/share/singalong"},
		{name: "relative path untouched", path: "songs/abba", home: "/home/u", want: "songs/abba"},
		{name: "empty path", path: "", home: "/home/u", want: ""},
		{name: "leading tilde", path: "~/x/y", home: "/home/u", want: "/home/u/x/y"},
		{name: "tilde alone", path: "~", home: "/home/u", want: "/home/u"},
		{name: "tilde with trailing slash", path: "~/", home: "/home/u", want: "/home/u/"},
		{name: "doubled separator", path: "~//x", home: "/home/u", want: "/home/u/x"},
		{name: "doubled separator inside", path: "~/x//y", home: "/home/u", want: "/home/u/x/y"},
		{name: "repeated trailing separators", path: "~/x/y//", home: "/home/u", want: "/home/u/x/y/"},
		{name: "doubled separator empty home", path: "~//x///y", home: "", want: "x/y"},
		{name: "home with trailing slash", path: "~/x", home: "/home/u/", want: "/home/u/x"},
		{name: "root home", path: "~/x", home: "/", want: "/x"},
		{name: "tilde not first", path: "a/~/b", home: "/home/u", want: "a/~/b"},
		{name: "named user not expanded", path: "~bob/x", home: "/home/u", want: "~bob/x"},
		{name: "dot segments kept", path: "~/a/../b", home: "/home/u", want: "/home/u/a/../b"},
		{name: "empty home keeps remainder", path: "~/x/y", home: "", want: "x/y"},
		{name: "empty home tilde alone", path: "~", home: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mangle(tt.path, tt.home))
		})
	}
}

func TestPathMangle_UsesCachedHome(t *testing.T) {
	home := HomeDir()

	assert.Equal(t, "/etc/passwd", PathMangle("/etc/passwd"))
	assert.Equal(t, appendComponents(home, "music/songs"), PathMangle("~/music/songs"))
	assert.Equal(t, home, PathMangle("~"))
}

func TestIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "song.txt")
	assert.NoError(t, os.WriteFile(file, []byte("#TITLE:x"), 0o644))

	assert.True(t, IsDir(dir))
	assert.False(t, IsDir(file))
	assert.False(t, IsDir(filepath.Join(dir, "missing")))
}
