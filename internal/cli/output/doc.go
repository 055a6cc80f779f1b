// Package output provides output formatting for the WhiteHole CLI.
//
//   - formatter.go: Formatter interface and factory
//   - table.go: aligned key/value and column tables
//   - json.go, yaml.go: machine-readable output
//   - status.go: ✓ / ⚠ / ✗ status lines, colored on terminals
package output
