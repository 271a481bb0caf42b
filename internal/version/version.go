// Package version holds the Mint_Pad release number and build metadata.
//
// Commit may be set with -ldflags "-X .../internal/version.Commit=<sha>".
// Without it the VCS revision recorded by the Go toolchain is used.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// Commit is the git commit this binary was built from.
var Commit string

const (
	major = 0
	minor = 3
	patch = 0

	// preRelease may only use [0-9A-Za-z-].
	preRelease = ""
)

// Version returns the semantic version, e.g. "0.3.0".
func Version() string {
	v := fmt.Sprintf("%d.%d.%d", major, minor, patch)
	if pre := sanitize(preRelease); pre != "" {
		v += "-" + pre
	}
	return v
}

// RichVersion appends the commit and dirty marker when known.
func RichVersion() string {
	commit, dirty := revision()
	if commit == "" {
		return Version()
	}
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (%s)", Version(), commit)
}

func revision() (commit string, dirty bool) {
	if c := strings.TrimSpace(Commit); c != "" {
		return c, false
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return commit, dirty
}

func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '-':
			return r
		default:
			return -1
		}
	}, s)
}
