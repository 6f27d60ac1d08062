// Package version exposes the cmakemin build version.
package version

// cliVersion is overridden at build time via
// -ldflags "-X github.com/indaco/cmakemin/internal/version.cliVersion=...".
var cliVersion = "0.3.0"

// GetVersion returns the CLI version string.
func GetVersion() string {
	return cliVersion
}
