// Package version provides versioning and metadata for the application.
package version

var (
	// CurrentVersion is the version of the application.
	// It is set during the build process using the -X flag.
	// For example: go build -ldflags "-X 'github.com/swarms-world/swarms-cli/internal/version.CurrentVersion=1.0.0'"
	CurrentVersion = "0.0.0"
)
