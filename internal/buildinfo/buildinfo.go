// Package buildinfo carries version metadata stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/team9044/launchband/internal/buildinfo.Version=v0.3.0"
package buildinfo

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String is the one-line banner printed by `launchband version`.
func String() string {
	return fmt.Sprintf("launchband %s (commit=%s, date=%s, %s)", version(), Commit, Date, runtime.Version())
}

// version falls back to the module version recorded by `go install` when nothing was stamped.
func version() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if v := info.Main.Version; v != "" && v != "(devel)" {
			return v
		}
	}
	return Version
}
