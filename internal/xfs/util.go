package xfs

import "os"

// IsDir reports whether path names an existing directory.
// Symbolic links are followed.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}
