// Package version provides version information and build metadata for tzip.
//
// Version information comes from, in order of preference:
//   - Compile-time variables (Version, Commit, Date) set via -ldflags
//   - Runtime build info from debug.ReadBuildInfo()
//   - Fallback defaults for development builds
//
// Build with:
//
//	go build -ldflags "-X github.com/dendrascience/tzip/version.Version=v1.0.0 -X github.com/dendrascience/tzip/version.Commit=abc1234def"
//
// GetFullVersion is what the CLI shows for --version; GetInfo is what the
// metadata sidecar records.
package version
