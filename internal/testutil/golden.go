package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// updateGolden controls whether golden files should be rewritten.
// Use: go test ./... -update
var updateGolden = flag.Bool("update", false, "update golden files")

// ShouldUpdate returns true if golden files should be updated.
func ShouldUpdate() bool {
	return *updateGolden
}

// GoldenPath returns testdata/golden/<name>.golden relative to the
// package under test.
func GoldenPath(name string) string {
	return filepath.Join("testdata", "golden", name+".golden")
}

// AssertGolden compares got against the named golden file, or rewrites
// the file when -update is set.
func AssertGolden(t *testing.T, name string, got string) {
	t.Helper()

	path := GoldenPath(name)
	if ShouldUpdate() {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("Failed to create golden dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0o644); err != nil {
			t.Fatalf("Failed to write golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden file %s (run with -update to create): %v", path, err)
	}
	if string(want) != got {
		t.Errorf("Output does not match %s\n--- got ---\n%s\n--- want ---\n%s", path, got, want)
	}
}
