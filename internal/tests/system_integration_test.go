// Package tests provides end-to-end tests across the registry, the
// Windows 16 helper and the export codec.
package tests

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/yndnr/whitehole-go/internal/compat"
	"github.com/yndnr/whitehole-go/internal/core/service"
	"github.com/yndnr/whitehole-go/internal/storage/memory"
	"github.com/yndnr/whitehole-go/internal/storage/snapshot"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
	"github.com/yndnr/whitehole-go/internal/telemetry/metric"
)

func TestSystem_InitializeExportRestore(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	log := logger.Discard()
	metrics := metric.NewRegistry()

	registry := service.NewRegistryService(memory.New(), "integration-device",
		service.WithLogger(log), service.WithMetrics(metrics))
	helper := compat.New("integration-device", compat.WithLogger(log))

	if err := helper.Initialize(ctx); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	for _, id := range []int{1, 10, 100, 200} {
		if err := registry.CreateVLAN(ctx, id, "", ""); err != nil {
			t.Fatalf("CreateVLAN(%d) error = %v", id, err)
		}
	}
	if n := helper.BulkCreate(ctx, registry, 1000, 1000); n != 1000 {
		t.Fatalf("BulkCreate() = %d, want 1000", n)
	}
	if n := registry.BulkCreateVLANs(ctx, 1990, 2010, "OVERLAP"); n != 11 {
		t.Fatalf("BulkCreateVLANs() overlap = %d, want 11", n)
	}
	registry.StoreValue(ctx, "initialization_complete", true)

	path := filepath.Join(t.TempDir(), "white_hole_config.json")
	if err := registry.ExportConfig(ctx, path); err != nil {
		t.Fatalf("ExportConfig() error = %v", err)
	}

	manifest, err := snapshot.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if manifest.DeviceID != "integration-device" {
		t.Errorf("DeviceID = %q", manifest.DeviceID)
	}
	if len(manifest.ActiveVLANs) != 1015 {
		t.Errorf("len(ActiveVLANs) = %d, want 1015", len(manifest.ActiveVLANs))
	}

	restored := service.NewRegistryService(memory.New(), "restored-device", service.WithLogger(log))
	n, err := restored.ImportConfig(ctx, path)
	if err != nil {
		t.Fatalf("ImportConfig() error = %v", err)
	}
	if n != 1015 {
		t.Errorf("ImportConfig() = %d, want 1015", n)
	}

	want := registry.ListVLANs(ctx, 1, 0)
	got := restored.ListVLANs(ctx, 1, 0)
	if len(got) != len(want) {
		t.Fatalf("restored %d VLANs, want %d", len(got), len(want))
	}
	wantIDs := make([]int, len(want))
	gotIDs := make([]int, len(got))
	for i := range want {
		wantIDs[i], gotIDs[i] = want[i].ID, got[i].ID
	}
	if !reflect.DeepEqual(gotIDs, wantIDs) {
		t.Error("restored id set differs from the exported one")
	}

	if v, _ := restored.GetVLAN(ctx, 1500); v == nil || v.Name != "VLAN-1500" {
		t.Errorf("restored VLAN 1500 = %+v, want default name", v)
	}
	if got := restored.Stats(ctx).StorageEntries; got != 0 {
		t.Errorf("StorageEntries after import = %d, want 0", got)
	}
}
