package buildinfo

import (
	"fmt"
	"runtime"
)

// Set with -ldflags "-X github.com/aalvaropc/svgstore/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func String() string {
	return fmt.Sprintf("svgstore %s (commit=%s, date=%s, %s/%s)", Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
