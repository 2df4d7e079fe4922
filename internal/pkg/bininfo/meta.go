// Package bininfo carries build metadata stamped in at link time through
// -ldflags -X. The variable names are part of the build contract; renaming
// them silently breaks version stamping.
package bininfo

var (
	// Version is the release version of the binary. The build appends the
	// git commit after a plus sign when available.
	Version = "v0.0.0"

	// BuildTime is the RFC3339 timestamp of the build.
	BuildTime = "1970-01-01T00:00:00Z"
)
