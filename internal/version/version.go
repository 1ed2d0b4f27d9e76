package version

import (
	"fmt"
	"runtime/debug"
	"time"
)

// Заполняются через -ldflags "-X .../internal/version.Version=..."
var (
	Version   string
	Commit    string
	BuildDate string // YYYY-MM-DD (UTC)
)

// VersionInfo describes the build metadata in structured form.
type VersionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate,omitempty"`
	GoVersion string `json:"goVersion,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Info returns structured version information.
// Values not set at link time are taken from the embedded build info.
func Info() VersionInfo {
	info := VersionInfo{
		Version:   coalesce(Version, "dev"),
		Commit:    Commit,
		BuildDate: BuildDate,
	}

	if BuildDate != "" {
		if _, err := time.ParseInLocation("2006-01-02", BuildDate, time.UTC); err != nil {
			info.Error = fmt.Sprintf("invalid BuildDate %q: %v", BuildDate, err)
		}
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// String returns a human-readable build string.
func String() string {
	info := Info()
	commit := coalesce(info.Commit, "unknown")
	if len(commit) > 12 {
		commit = commit[:12]
	}
	if info.Modified {
		commit += "+dirty"
	}
	return fmt.Sprintf("Party server %s commit[%s] built[%s]", info.Version, commit, coalesce(info.BuildDate, "unknown"))
}

func coalesce(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
