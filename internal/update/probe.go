package update

import (
	"os"
	"path/filepath"
)

// IsRepository reports whether path is a git working copy: an existing
// directory containing a .git subdirectory. It never returns an error;
// nonexistent or unreadable paths are simply not repositories.
func IsRepository(path string) bool {
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return false
	}
	info, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && info.IsDir()
}
