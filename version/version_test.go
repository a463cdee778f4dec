package version

import (
	"strings"
	"testing"
)

func TestGetFullVersion_Injected(t *testing.T) {
	oldVersion, oldCommit, oldDate := Version, Commit, Date
	t.Cleanup(func() { Version, Commit, Date = oldVersion, oldCommit, oldDate })

	tests := []struct {
		name                  string
		version, commit, date string
		want                  string
	}{
		{"all set", "v1.2.3", "0123456789abcdef", "2025-01-01", "v1.2.3 (0123456, built 2025-01-01)"},
		{"no date", "v1.2.3", "0123456789abcdef", "unknown", "v1.2.3 (0123456)"},
		{"short commit", "v1.2.3", "abc", "2025-01-01", "v1.2.3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Version, Commit, Date = tt.version, tt.commit, tt.date
			if got := GetFullVersion(); got != tt.want {
				t.Errorf("GetFullVersion() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestGetInfo(t *testing.T) {
	info := GetInfo()
	if info.Package != "tzip" {
		t.Errorf("Package = %q, want tzip", info.Package)
	}
	if info.Version == "" || !strings.HasPrefix(info.GoVersion, "go") {
		t.Errorf("GetInfo() = %+v", info)
	}
}
