// Package gnlex contains build information for the GNlex application.
package gnlex

var (
	// Version of GNlex, set by build flags.
	Version = "v0.1.0"

	// Build timestamp, set by build flags.
	Build = "n/a"
)
