// Package buildinfo provides build information for WhiteHole.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/whitehole-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When they are not injected, Get falls back to the module build info
// embedded by the Go toolchain.
package buildinfo
