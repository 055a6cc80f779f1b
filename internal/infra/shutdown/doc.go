// Package shutdown coordinates cleanup when a command finishes or the
// process is interrupted.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//
//	h := shutdown.NewHandler(5 * time.Second)
//	h.OnShutdown(func(ctx context.Context) error { return flush(ctx) })
//	defer h.Close()
package shutdown
