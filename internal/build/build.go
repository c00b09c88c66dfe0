// Package build holds build-time information.
package build

import "fmt"

// Version, Commit and Date default to development values and are
// overwritten by linker flags in release builds.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the build as "<version> (commit: <commit>, date: <date>)".
func Info() string {
	return fmt.Sprintf("%s (commit: %s, date: %s)", Version, Commit, Date)
}
