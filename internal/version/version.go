// Package version reports the route2file build.
package version

import (
	"fmt"
	"runtime/debug"
)

// Overridable at build time:
//
//	go build -ldflags "-X route2file/internal/version.Version=1.0.0 -X route2file/internal/version.Commit=abc123"
var (
	Version   = "0.3.0"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// vcs returns the commit and time recorded by the Go toolchain, used
// when ldflags left them unset.
func vcs() (commit, date string, modified bool) {
	commit, date = Commit, BuildDate
	info, ok := readBuildInfo()
	if !ok {
		return commit, date, false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" {
				commit = s.Value
			}
		case "vcs.time":
			if date == "unknown" {
				date = s.Value
			}
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	return commit, date, modified
}

// Info returns "<version>" or "<version> (<short commit>)".
func Info() string {
	commit, _, modified := vcs()
	if len(commit) <= 7 {
		return Version
	}
	if modified {
		return fmt.Sprintf("%s (%s, modified)", Version, commit[:7])
	}
	return fmt.Sprintf("%s (%s)", Version, commit[:7])
}

// Full returns complete version information
func Full() string {
	commit, date, _ := vcs()
	return fmt.Sprintf("route2file version %s\nCommit: %s\nBuilt: %s", Version, commit, date)
}
