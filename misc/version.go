// Package misc holds program identity: name, version and source revision.
package misc

import (
	"runtime/debug"
	"sync"
)

const appName = "css2tw"

// version may be overwritten at link time with -ldflags "-X css2tw/misc.version=...".
var version = "dev"

var buildInfo = sync.OnceValue(func() map[string]string {
	settings := make(map[string]string)
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			settings[s.Key] = s.Value
		}
		if version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			settings["module.version"] = bi.Main.Version
		}
	}
	return settings
})

func GetAppName() string {
	return appName
}

// GetVersion returns program version, either set at link time or taken from
// module information.
func GetVersion() string {
	if v, ok := buildInfo()["module.version"]; ok {
		return v
	}
	return version
}

// GetGitHash returns VCS revision program was built from, with "-dirty"
// suffix for modified trees.
func GetGitHash() string {
	info := buildInfo()
	rev, ok := info["vcs.revision"]
	if !ok {
		return "unknown"
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}
	if info["vcs.modified"] == "true" {
		rev += "-dirty"
	}
	return rev
}
