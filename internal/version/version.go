// Package version holds the current version of osintkit.
package version

// KitVersion is updated when doing a release
const KitVersion = "1.0.0"
