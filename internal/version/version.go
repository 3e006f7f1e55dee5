package version

import "fmt"

// Set via -ldflags at build time.
var (
	Version = "1.0.0"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit=%s date=%s)", Version, Commit, Date)
}
