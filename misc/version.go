// Package misc keeps build time information about the program.
package misc

import (
	"os"
	"path/filepath"
	"runtime/debug"
)

// Set by linker at build time.
var (
	appName = ""
	version = "dev"
	githash = ""
)

// GetAppName returns program name, either set at build time or derived from
// executable.
func GetAppName() string {
	if len(appName) > 0 {
		return appName
	}
	name := filepath.Base(os.Args[0])
	return name[:len(name)-len(filepath.Ext(name))]
}

// GetVersion returns program version.
func GetVersion() string {
	return version
}

// GetGitHash returns commit hash program was built from, falls back to vcs
// information embedded by the toolchain.
func GetGitHash() string {
	if len(githash) > 0 {
		return githash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
