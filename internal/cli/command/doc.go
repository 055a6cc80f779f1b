// Package command provides CLI command definitions for whitehole.
//
// This package defines all CLI commands using urfave/cli/v2:
//
//   - root.go: App, global flags, per-invocation environment
//   - run.go: the full initialization sequence, optionally followed by the menu
//   - shell.go: the interactive menu over a fresh registry
//   - capabilities.go: the Windows 16 capability descriptor
//   - validate.go: device configuration validation
//   - script.go: PowerShell helper script generation
//   - inspect.go: export file inspection
//
// Commands follow a consistent pattern of reading the environment prepared
// in Before, calling the registry or helper, and formatting output.
package command
