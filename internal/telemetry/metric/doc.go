// Package metric provides Prometheus metrics for WhiteHole.
//
// The CLI has no HTTP surface, so metrics are not scraped. Instead the
// registry is dumped in the Prometheus text format to a file at exit
// (node_exporter textfile collector style) when --metrics-file is set.
//
// All Registry methods are safe to call on a nil *Registry.
package metric
