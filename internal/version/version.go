// Package version carries build metadata, overridden at link time:
//
//	go build -ldflags "-X github.com/Nateu/dotty/internal/version.Version=v1.2.3"
package version

var (
	AppName   = "Dotty"
	Version   = "dev"
	BuildDate = "unknown"
)
