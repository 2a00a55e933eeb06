package xfs

import (
	"os"
	"path/filepath"
)

const tilde = "~"

// PathMangle replaces a leading "~" component with the home directory.
// Only the first component is special: "~user" and "~" in later positions
// are left as they are. Paths that do not start with "~" are returned
// unchanged.
func PathMangle(path string) string {
	head, _, _ := cutComponent(path)
	if head != tilde {
		return path
	}

	return mangle(path, HomeDir())
}

func mangle(path, home string) string {
	head, rest, found := cutComponent(path)
	if head != tilde {
		return path
	}
	if !found {
		return home
	}

	return appendComponents(home, joinComponents(rest))
}

// joinComponents drops empty components from rest, so "x//y" and "/x/y"
// become "x/y". A trailing separator is kept as a single one.
func joinComponents(rest string) string {
	out := make([]byte, 0, len(rest))
	for i := 0; i < len(rest); i++ {
		c := rest[i]
		if os.IsPathSeparator(c) && (len(out) == 0 || os.IsPathSeparator(out[len(out)-1])) {
			continue
		}
		out = append(out, c)
	}

	return string(out)
}

// cutComponent splits path around its first separator.
func cutComponent(path string) (head, rest string, found bool) {
	for i := 0; i < len(path); i++ {
		if os.IsPathSeparator(path[i]) {
			return path[:i], path[i+1:], true
		}
	}

	return path, "", false
}

// appendComponents appends rest to base without cleaning either side.
func appendComponents(base, rest string) string {
	if base == "" {
		return rest
	}
	if os.IsPathSeparator(base[len(base)-1]) {
		return base + rest
	}

	return base + string(filepath.Separator) + rest
}
