package version

import (
	"regexp"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Mapx", Mapx},
		{"Config", Config},
		{"Log", Log},
		{"CLI", CLI},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		component string
		expected  string
	}{
		{"mapx", Mapx},
		{"config", Config},
		{"log", Log},
		{"cli", CLI},
		{"dandelion", CLI},
		{"unknown", Platform},
		{"", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.component, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()
	if !strings.HasPrefix(info, "dandelion v"+Platform+"\n") {
		t.Errorf("Info() = %q", info)
	}
	if !strings.Contains(info, GitCommit) {
		t.Error("Info() should include the git commit")
	}
}
