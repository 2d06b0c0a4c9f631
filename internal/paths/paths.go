package paths

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// HomeEnvVar overrides the per-user settings directory.
	HomeEnvVar = "ROUTE_TO_FILE_HOME"
	// DefaultHome is the settings directory name under the user's home.
	DefaultHome = ".route2file"
)

// GetHome returns the per-user settings directory.
// ROUTE_TO_FILE_HOME wins over ~/.route2file.
func GetHome() (string, error) {
	if h := os.Getenv(HomeEnvVar); h != "" {
		return h, nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(userHome, DefaultHome), nil
}

// ResolveRoot picks the effective project root: the explicit override,
// else fallback, else the working directory. The result is absolute and
// cleaned; it is not required to exist.
func ResolveRoot(override, fallback string) (string, error) {
	root := override
	if root == "" {
		root = fallback
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		root = wd
	}
	return filepath.Abs(root)
}

// IsWithinRoot reports whether path stays inside root. The check is
// lexical: candidates are joined under root, so only ".." segments can
// leave it, and symlinks in root itself do not matter.
func IsWithinRoot(path string, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = NormalizePath(rel)
	return rel != ".." && !strings.HasPrefix(rel, "../")
}

// NormalizePath normalizes a path by converting backslashes to forward slashes
func NormalizePath(path string) string {
	return strings.ReplaceAll(filepath.ToSlash(path), `\`, "/")
}

// RelativeTo returns path relative to root in OS form, or path itself
// when no relative form exists.
func RelativeTo(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
