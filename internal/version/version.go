// Package version holds build metadata injected at link time.
package version

import "fmt"

// Set via -ldflags at build time, e.g.
// go build -ldflags "-X gostarter/internal/version.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info returns a human-readable version string.
func Info() string {
	return fmt.Sprintf("gostarter %s (commit %s, built %s)", Version, Commit, Date)
}
