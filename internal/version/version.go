// Package version holds build information injected with
// -ldflags "-X github.com/connorhough/sigsleep/internal/version.Version=...".
package version

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the version followed by the commit and build date, for logs.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, Date)
}
