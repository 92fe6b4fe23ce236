// Package buildinfo holds version metadata stamped in at link time:
//
//	go build -ldflags "-X github.com/cleared-dev/smsledger/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the source revision.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// String renders the version line shown by --version.
func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}
