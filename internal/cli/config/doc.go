// Package config provides CLI configuration for WhiteHole.
//
//   - settings.go: Settings struct (~/.whitehole/settings.yaml) and defaults
//   - loader.go: layered loading through confloader, device configuration files
//
// Settings come from, lowest priority first: defaults, the settings file,
// WHITEHOLE_* environment variables (optionally from .env) and flags.
package config
