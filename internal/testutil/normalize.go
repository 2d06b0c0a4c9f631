package testutil

import (
	"path/filepath"
	"strings"
)

// RootPlaceholder replaces the temporary project root in golden output.
const RootPlaceholder = "<ROOT>"

// NormalizeRoot replaces every occurrence of root in text with
// RootPlaceholder and converts path separators to forward slashes, so
// golden files are stable across machines.
func NormalizeRoot(text, root string) string {
	text = strings.ReplaceAll(text, root, RootPlaceholder)
	if filepath.Separator != '/' {
		text = strings.ReplaceAll(text, string(filepath.Separator), "/")
	}
	return text
}
