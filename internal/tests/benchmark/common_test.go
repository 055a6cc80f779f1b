package benchmark

import (
	"context"
	"runtime"
	"testing"

	"github.com/yndnr/whitehole-go/internal/core/service"
	"github.com/yndnr/whitehole-go/internal/storage/memory"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
)

// VLANCounts defines the registry sizes for benchmarking.
var VLANCounts = []int{1000, 10000, 100000}

// SmallVLANCounts for quick benchmarks.
var SmallVLANCounts = []int{1000, 10000}

// newRegistry returns an empty registry with the default VLAN space.
func newRegistry() *service.RegistryService {
	return service.NewRegistryService(memory.New(), "bench-device", service.WithLogger(logger.Discard()))
}

// prefillRegistry creates VLANs 1..count.
func prefillRegistry(ctx context.Context, b *testing.B, r *service.RegistryService, count int) {
	b.Helper()
	if n := r.BulkCreateVLANs(ctx, 1, count, "BENCH"); n != count {
		b.Fatalf("prefill created %d VLANs, want %d", n, count)
	}
}

// reportMemory reports heap usage after a GC.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.HeapAlloc)/1024/1024, prefix+"_heap_MB")
}
