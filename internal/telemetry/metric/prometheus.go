package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "whitehole"

// Operation labels.
const (
	OpCreate = "create"
	OpDelete = "delete"
	OpGet    = "get"
	OpImport = "import"
	OpExport = "export"
)

// Result labels.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	VLANsActive   prometheus.Gauge
	EntriesStored prometheus.Gauge

	Operations    *prometheus.CounterVec
	BulkCreated   *prometheus.CounterVec
	FileTransfers *prometheus.CounterVec
}

// NewRegistry creates a registry with all WhiteHole metrics registered.
// It uses its own prometheus.Registry so tests and multiple registries
// never collide on the global default.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		VLANsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "vlans_active",
			Help:      "Number of VLAN records currently registered.",
		}),
		EntriesStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "entries_stored",
			Help:      "Number of key/value entries currently stored.",
		}),
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "vlan_operations_total",
			Help:      "VLAN registry operations by operation and result.",
		}, []string{"op", "result"}),
		BulkCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bulk_created_total",
			Help:      "VLANs created by bulk operations, by source.",
		}, []string{"source"}),
		FileTransfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "config_transfers_total",
			Help:      "Configuration exports and imports by result.",
		}, []string{"op", "result"}),
	}

	r.reg.MustRegister(
		r.VLANsActive,
		r.EntriesStored,
		r.Operations,
		r.BulkCreated,
		r.FileTransfers,
	)
	return r
}

// ObserveOp counts a registry operation.
func (r *Registry) ObserveOp(op string, err error) {
	if r == nil {
		return
	}
	r.Operations.WithLabelValues(op, result(err)).Inc()
}

// ObserveTransfer counts an export or import.
func (r *Registry) ObserveTransfer(op string, err error) {
	if r == nil {
		return
	}
	r.FileTransfers.WithLabelValues(op, result(err)).Inc()
}

// AddBulk adds n to the bulk-created counter for source.
func (r *Registry) AddBulk(source string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.BulkCreated.WithLabelValues(source).Add(float64(n))
}

// SetSizes records the current record and entry counts.
func (r *Registry) SetSizes(vlans, entries int) {
	if r == nil {
		return
	}
	r.VLANsActive.Set(float64(vlans))
	r.EntriesStored.Set(float64(entries))
}

// WriteTextfile writes all metrics to path in the Prometheus text format.
func (r *Registry) WriteTextfile(path string) error {
	if r == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}

func result(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultOK
}
