package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	// These will be set by build flags or default to development values
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info contains version information
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version"`
	Package   string `json:"package"`
}

// buildSetting looks up a VCS setting recorded by the Go toolchain.
func buildSetting(key string) (string, bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, setting := range info.Settings {
		if setting.Key == key {
			return setting.Value, true
		}
	}
	return "", false
}

func injected(v, unset string) bool {
	return v != "" && v != unset
}

// GetVersion returns the -ldflags version, then the module version, then "development".
func GetVersion() string {
	if injected(Version, "dev") {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return "development"
}

// GetCommit returns the git commit the binary was built from.
func GetCommit() string {
	if injected(Commit, "unknown") {
		return Commit
	}
	if rev, ok := buildSetting("vcs.revision"); ok {
		if modified, _ := buildSetting("vcs.modified"); modified == "true" {
			return rev + "-dirty"
		}
		return rev
	}
	return "unknown"
}

// GetBuildDate returns the build or commit date.
func GetBuildDate() string {
	if injected(Date, "unknown") {
		return Date
	}
	if t, ok := buildSetting("vcs.time"); ok {
		return t
	}
	return "unknown"
}

// GetInfo returns complete version information
func GetInfo() Info {
	return Info{
		Version:   GetVersion(),
		Commit:    GetCommit(),
		Date:      GetBuildDate(),
		GoVersion: runtime.Version(),
		Package:   "tzip",
	}
}

// GetFullVersion returns the version with a short commit and build date when known,
// e.g. "v0.3.0 (1a2b3c4, built 2025-01-01T00:00:00Z)".
func GetFullVersion() string {
	info := GetInfo()
	if info.Commit == "unknown" || len(info.Commit) <= 7 {
		return info.Version
	}
	short := info.Commit[:7]
	if info.Date == "unknown" {
		return fmt.Sprintf("%s (%s)", info.Version, short)
	}
	return fmt.Sprintf("%s (%s, built %s)", info.Version, short, info.Date)
}
