// Package version carries the mdindex build metadata stamped via ldflags.
package version

import "fmt"

// Overridden at build time with
// -ldflags "-X github.com/itsmostafa/mdindex/internal/version.Version=...".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func String() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}
