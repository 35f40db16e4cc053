package version

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Variables injected at compile time
var (
	BuildVersion = "unknown"
	BuildTime    = "unknown"
	GitCommit    = "unknown"
)

// Info struct stores application version information
type Info struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Get gets version number, prefers compile-time injected version
func Get() string {
	if BuildVersion != "unknown" {
		return strings.TrimPrefix(BuildVersion, "v")
	}

	// fallback to reading from VERSION file
	data, err := os.ReadFile("VERSION")
	if err != nil {
		return "0.0.0"
	}
	return strings.TrimPrefix(strings.TrimSpace(string(data)), "v")
}

// GetInfo gets complete version information
func GetInfo() Info {
	return Info{
		Version:   Get(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

// Print prints version information to w
func Print(w io.Writer) {
	info := GetInfo()
	fmt.Fprintf(w, "OSS Upload Helper v%s\n", info.Version)
	if info.GitCommit != "unknown" {
		fmt.Fprintf(w, "  commit: %s, built: %s\n", info.GitCommit, info.BuildTime)
	}
}
