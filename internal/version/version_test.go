package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		version     string
		commit      string
		settings    map[string]string
		wantVersion string
		wantCommit  string
	}{
		{
			name:        "ldflags win",
			version:     "v1.2.3",
			commit:      "abc1234",
			settings:    map[string]string{"vcs.revision": "ffffffffffff"},
			wantVersion: "v1.2.3",
			wantCommit:  "abc1234",
		},
		{
			name: "vcs stamp",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.time":     "2026-10-18T09:00:00Z",
			},
			wantVersion: "dev-20261018",
			wantCommit:  "0123456",
		},
		{
			name: "dirty tree",
			settings: map[string]string{
				"vcs.revision": "0123456789abcdef",
				"vcs.modified": "true",
			},
			wantVersion: "dev",
			wantCommit:  "0123456-dirty",
		},
		{
			name:        "nothing known",
			settings:    map[string]string{},
			wantVersion: "dev",
			wantCommit:  "unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolve(tt.version, tt.commit, tt.settings)
			if got.Version != tt.wantVersion {
				t.Errorf("Version = %q, want %q", got.Version, tt.wantVersion)
			}
			if got.Commit != tt.wantCommit {
				t.Errorf("Commit = %q, want %q", got.Commit, tt.wantCommit)
			}
			if got.GoVersion != runtime.Version() {
				t.Errorf("GoVersion = %q, want %q", got.GoVersion, runtime.Version())
			}
		})
	}
}

func TestFull(t *testing.T) {
	full := Full()
	if !strings.Contains(full, "(commit: ") {
		t.Errorf("Full() = %q, should contain the commit", full)
	}
	if !strings.HasPrefix(Get().String(), "openrazer-configure ") {
		t.Errorf("String() = %q, should start with the program name", Get().String())
	}
}
