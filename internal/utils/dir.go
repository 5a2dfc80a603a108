package utils

import (
	"os"
)

func pathMode(p string) (os.FileMode, bool) {
	fi, err := os.Stat(p)
	if err != nil {
		return 0, false
	}
	return fi.Mode(), true
}

// IsFile reports whether p names an existing regular file.
// Pipes and devices are rejected.
func IsFile(p string) bool {
	m, ok := pathMode(p)
	return ok && m.IsRegular()
}

// IsDirectory reports whether p names an existing directory.
func IsDirectory(p string) bool {
	m, ok := pathMode(p)
	return ok && m.IsDir()
}
