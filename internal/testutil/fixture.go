// Package testutil provides project-tree fixtures and golden-file helpers
// for tests.
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// NewProject creates a temporary project root containing entries and
// returns its absolute path. See WriteTree for the entry syntax.
func NewProject(t *testing.T, entries ...string) string {
	t.Helper()

	root := t.TempDir()
	WriteTree(t, root, entries...)
	return root
}

// WriteTree creates entries under root. Entries are slash-separated paths
// relative to root; a trailing slash creates an empty directory, anything
// else a small file with its parent directories.
func WriteTree(t *testing.T, root string, entries ...string) {
	t.Helper()

	for _, e := range entries {
		full := filepath.Join(root, filepath.FromSlash(strings.TrimSuffix(e, "/")))
		if strings.HasSuffix(e, "/") {
			if err := os.MkdirAll(full, 0o755); err != nil {
				t.Fatalf("Failed to create directory %s: %v", e, err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatalf("Failed to create parent of %s: %v", e, err)
		}
		if err := os.WriteFile(full, []byte("export default {}\n"), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", e, err)
		}
	}
}

// Abs joins a slash-separated relative path onto root.
func Abs(root, rel string) string {
	return filepath.Join(root, filepath.FromSlash(rel))
}
