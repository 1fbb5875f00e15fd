// Package misc provides build information for the program.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "cssfold"

// version may be set at link time with -ldflags "-X cssfold/misc.version=..."
var version = ""

var buildInfo = sync.OnceValue(func() *debug.BuildInfo {
	if bi, ok := debug.ReadBuildInfo(); ok {
		return bi
	}
	return nil
})

func GetAppName() string {
	return appName
}

// GetVersion returns the program version: the link time value, the module
// version from build information or "dev".
func GetVersion() string {
	if version != "" {
		return version
	}
	if bi := buildInfo(); bi != nil && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

// GetGitHash returns the VCS revision the binary was built from, if known.
func GetGitHash() string {
	bi := buildInfo()
	if bi == nil {
		return "unknown"
	}
	var (
		rev      = "unknown"
		modified bool
	)
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if modified {
		rev += "-dirty"
	}
	return rev
}
