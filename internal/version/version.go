// Package version holds the current version of swiftdeps.
package version

// Version is the current release of swiftdeps.
var Version = "0.3.1"
