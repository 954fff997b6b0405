// Package version reports build information for pathpick.
package version

import (
	"fmt"
	"runtime"
)

// Set at build time:
// go build -ldflags "-X 'github.com/AntonioJCosta/pathpick/internal/version.Version=1.2.3' -X 'github.com/AntonioJCosta/pathpick/internal/version.Commit=abcdefg'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
	Platform  string
}

// Get returns the current version information.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the information on a single line.
func (i Info) String() string {
	return fmt.Sprintf("pathpick version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
