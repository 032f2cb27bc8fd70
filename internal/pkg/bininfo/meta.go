// Package bininfo carries build metadata injected with -ldflags "-X".
package bininfo

var (
	// Version is the SemVer version of the binary, with the git commit appended after a plus sign when known.
	Version = "v0.0.0"

	// BuildTime is when the binary was built, in RFC3339.
	BuildTime = "1970-01-01T00:00:00Z"
)

// Describe renders Version and BuildTime for `teamdata --version`.
func Describe() string {
	return Version + " (built " + BuildTime + ")"
}
