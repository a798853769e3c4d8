// Package version holds build metadata injected via ldflags.
package version

// Name is the service name reported in logs and CLI help.
const Name = "shopsearch"

//nolint:revive // Set via ldflags at build time.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String renders the build metadata on one line.
func String() string {
	return Name + " " + Version + " (" + Commit + ", " + Date + ")"
}
