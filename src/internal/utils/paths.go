package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// GetAbsolutePath returns path if it was absolute, otherwise joins it with baseDir
func GetAbsolutePath(path, baseDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}

// ExpandHome replaces a leading "~" or "~/" with the current user's home directory.
// Paths like "~other/x" and paths without a tilde are returned unchanged, as is
// the input when the home directory cannot be determined.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// ResolvePath expands "~" and makes a relative path absolute against baseDir.
// An empty path stays empty.
func ResolvePath(path, baseDir string) string {
	if path == "" {
		return ""
	}
	return GetAbsolutePath(ExpandHome(path), baseDir)
}
