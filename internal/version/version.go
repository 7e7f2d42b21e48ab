// Package version records the application version.
package version

// Version is the application version reported by the version endpoint.
// Overridden at build time via -ldflags "-X .../internal/version.Version=x.y.z".
var Version = "dev"
