package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	defer func() { Version, Commit = oldVersion, oldCommit }()

	tests := []struct {
		version, commit, want string
	}{
		{"v1.2.0", "0123456789abcdef", "v1.2.0 (0123456)"},
		{"dev", "none", "dev (none)"},
	}
	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() = %q, want %q", got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	if !strings.Contains(Template(), "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want the cobra name placeholder and version", Template())
	}
}
