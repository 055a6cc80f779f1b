// Package benchmark provides performance benchmarks for the VLAN registry.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Run only the export round trip:
//
//	go test -bench=BenchmarkExport -benchmem -benchtime=10s ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
