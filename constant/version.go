// Package constant holds build metadata injected at link time.
package constant

// go build -ldflags "-X github.com/communitymedia/mediaphone/constant.Version=1.2.0 -X github.com/communitymedia/mediaphone/constant.BuildTime=..."
var (
	Version   = "dev"
	BuildTime = "unknown"
)
