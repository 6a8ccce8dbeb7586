// Package version reports the build version of openrazer-configure.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"sync"
	"time"
)

// Version and Commit can be set at build time via ldflags:
//
//	go build -ldflags="-X github.com/muurk/openrazer-configure/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/openrazer-configure/internal/version.Commit=abc123"
//
// Values left empty are filled from the VCS stamp in the build info, and
// finally from "dev"/"unknown".
var (
	Version = ""
	Commit  = ""
)

// Info is the resolved build information.
type Info struct {
	Version   string
	Commit    string
	GoVersion string
}

var (
	resolved     Info
	resolvedOnce sync.Once
)

// Get returns the build information, resolving it on first use.
func Get() Info {
	resolvedOnce.Do(func() {
		resolved = resolve(Version, Commit, readBuildSettings())
	})
	return resolved
}

// Full returns the version string including commit
func Full() string {
	i := Get()
	return fmt.Sprintf("%s (commit: %s)", i.Version, i.Commit)
}

// String returns the version line printed by the version command.
func (i Info) String() string {
	return fmt.Sprintf("openrazer-configure %s (commit: %s, %s)", i.Version, i.Commit, i.GoVersion)
}

func readBuildSettings() map[string]string {
	settings := make(map[string]string)
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return settings
	}
	for _, s := range info.Settings {
		settings[s.Key] = s.Value
	}
	return settings
}

// resolve fills in whatever ldflags left empty from VCS build settings.
func resolve(version, commit string, settings map[string]string) Info {
	if commit == "" {
		if rev := settings["vcs.revision"]; rev != "" {
			if len(rev) > 7 {
				rev = rev[:7]
			}
			commit = rev
			if settings["vcs.modified"] == "true" {
				commit += "-dirty"
			}
		}
	}

	if version == "" {
		version = "dev"
		if t, err := time.Parse(time.RFC3339, settings["vcs.time"]); err == nil {
			version = "dev-" + t.UTC().Format("20060102")
		}
	}

	if commit == "" {
		commit = "unknown"
	}

	return Info{Version: version, Commit: commit, GoVersion: runtime.Version()}
}
