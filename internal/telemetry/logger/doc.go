// Package logger provides structured logging for WhiteHole.
//
// It wraps log/slog behind a small Logger interface:
//
//   - logger.go: handler construction, level control, the process default
//   - context.go: context propagation of the logger and the run ID
//
// Every process run gets a ULID run ID so that log lines from one
// initialization or shell session can be grouped.
package logger
