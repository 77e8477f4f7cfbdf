package app

import "fmt"

// Build metadata, injected at release time:
//
//	go build -ldflags "-X github.com/mfigueiredo/cursos-backend/internal/app.Version=1.0.0"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata as one string for the startup
// log line and the health endpoint.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
