package metric

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry returned nil")
	}

	// Two registries must not conflict.
	if NewRegistry() == nil {
		t.Fatal("second NewRegistry returned nil")
	}
}

func TestRegistry_ObserveOp(t *testing.T) {
	r := NewRegistry()

	r.ObserveOp(OpCreate, nil)
	r.ObserveOp(OpCreate, nil)
	r.ObserveOp(OpCreate, errors.New("dup"))

	if got := testutil.ToFloat64(r.Operations.WithLabelValues(OpCreate, ResultOK)); got != 2 {
		t.Errorf("create/ok = %v, want 2", got)
	}
	if got := testutil.ToFloat64(r.Operations.WithLabelValues(OpCreate, ResultError)); got != 1 {
		t.Errorf("create/error = %v, want 1", got)
	}
}

func TestRegistry_AddBulk(t *testing.T) {
	r := NewRegistry()

	r.AddBulk("registry", 100)
	r.AddBulk("registry", 0)
	r.AddBulk("registry", -5)

	if got := testutil.ToFloat64(r.BulkCreated.WithLabelValues("registry")); got != 100 {
		t.Errorf("bulk = %v, want 100", got)
	}
}

func TestRegistry_SetSizes(t *testing.T) {
	r := NewRegistry()
	r.SetSizes(4, 6)

	if got := testutil.ToFloat64(r.VLANsActive); got != 4 {
		t.Errorf("vlans_active = %v, want 4", got)
	}
	if got := testutil.ToFloat64(r.EntriesStored); got != 6 {
		t.Errorf("entries_stored = %v, want 6", got)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry

	// None of these may panic.
	r.ObserveOp(OpGet, nil)
	r.ObserveTransfer(OpExport, nil)
	r.AddBulk("x", 1)
	r.SetSizes(1, 1)
	if err := r.WriteTextfile(filepath.Join(t.TempDir(), "m.prom")); err != nil {
		t.Errorf("WriteTextfile on nil registry = %v", err)
	}
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.SetSizes(3, 1)
	r.ObserveTransfer(OpExport, nil)

	path := filepath.Join(t.TempDir(), "whitehole.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	text := string(data)
	for _, want := range []string{
		"whitehole_vlans_active 3",
		"whitehole_entries_stored 1",
		`whitehole_config_transfers_total{op="export",result="ok"} 1`,
	} {
		if !strings.Contains(text, want) {
			t.Errorf("textfile missing %q\n%s", want, text)
		}
	}
}
