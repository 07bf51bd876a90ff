// Package version reports build metadata stamped in at link time
package version

import "runtime/debug"

// Service is the name reported by /version
const Service = "postanalyzer-ml"

// BuildInfo holds version information about the service build.
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// Info returns the build information
// set at build time with
// -ldflags "-X 'postanalyzer/internal/core/version.version=v0.1.0' -X 'postanalyzer/internal/core/version.commit=abcd' -X 'postanalyzer/internal/core/version.date=2026-10-01'"
func Info() BuildInfo {
	bi := BuildInfo{
		Service: Service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
	if info, ok := readBuildInfo(); ok && info != nil {
		bi.GoVersion = info.GoVersion
		if bi.Commit == "none" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" && s.Value != "" {
					bi.Commit = s.Value
				}
			}
		}
	}
	return bi
}

var readBuildInfo = debug.ReadBuildInfo

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
