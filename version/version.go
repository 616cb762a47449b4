// Package version reports the running release for error reports and traces.
package version

import "os"

// Version returns the short commit SHA of the running build, taken from the
// COMMIT_SHA environment variable, or "unknown" when unset.
func Version() string {
	version, ok := os.LookupEnv("COMMIT_SHA")
	if !ok {
		version = "unknown"
	}
	if len(version) > 7 {
		version = version[:7]
	}
	return version
}
