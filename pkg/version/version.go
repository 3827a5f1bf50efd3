// Package version reports build information for the repocat binary.
package version

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X 'repocat/pkg/version.Version=1.2.3' -X 'repocat/pkg/version.Commit=abcdefg' -X 'repocat/pkg/version.BuildTime=2024-04-27T15:04:05Z'".
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
	Platform  string // GOOS/GOARCH
}

// Get returns the build information of the running binary.
func Get() Info {
	return Info{
		Version:   Version,
		GitCommit: Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String formats the information on one line, e.g.
// "repocat version 1.2.3 (commit: abcdefg) built at 2024-04-27T15:04:05Z with go1.23.1 on linux/amd64".
func (i Info) String() string {
	return fmt.Sprintf("repocat version %s (commit: %s) built at %s with %s on %s",
		i.Version, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
