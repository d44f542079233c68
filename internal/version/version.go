// Package version carries build metadata stamped in by the release build.
package version

import (
	"fmt"
	"runtime"
)

// Set from main, which receives them via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the machine-readable form printed by `mindtrack version --json`.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
	OS      string `json:"os"`
	Arch    string `json:"arch"`
}

func Current() Info {
	return Info{Version, Commit, Date, runtime.GOOS, runtime.GOARCH}
}

func (i Info) dev() bool { return i.Version == "dev" }

func (i Info) String() string {
	if i.dev() {
		return fmt.Sprintf("mindtrack dev (%s/%s)", i.OS, i.Arch)
	}
	return fmt.Sprintf("mindtrack %s (commit: %s, built: %s, %s/%s)", i.Version, i.Commit, i.Date, i.OS, i.Arch)
}

func GetVersion() string { return Version }

// GetVersionInfo is Current().String().
func GetVersionInfo() string { return Current().String() }

func GetShortVersion() string { return "mindtrack " + Version }
