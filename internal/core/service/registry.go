package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/yndnr/whitehole-go/internal/core/domain"
	"github.com/yndnr/whitehole-go/internal/storage/snapshot"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
	"github.com/yndnr/whitehole-go/internal/telemetry/metric"
)

// VLANRepository defines the storage interface for the registry.
type VLANRepository interface {
	// MaxVLANs returns the upper bound of the accepted ID range.
	MaxVLANs() int

	// Create stores a new VLAN. It fails if the ID is out of range or taken.
	Create(ctx context.Context, vlan *domain.VLAN) error

	// Get retrieves a VLAN by ID.
	Get(ctx context.Context, id int) (*domain.VLAN, error)

	// Delete removes a VLAN by ID.
	Delete(ctx context.Context, id int) error

	// Count returns the number of VLANs.
	Count() int

	// IDs returns all VLAN IDs in ascending order.
	IDs() []int

	// List returns up to limit VLANs with ID >= from, ascending.
	List(ctx context.Context, from, limit int) []*domain.VLAN

	// Put stores an entry, replacing any existing one with the same key.
	Put(ctx context.Context, entry *domain.Entry)

	// Value retrieves an entry by key.
	Value(ctx context.Context, key string) (*domain.Entry, error)

	// EntryCount returns the number of entries.
	EntryCount() int
}

// RegistryService manages VLAN records and key/value entries for one device.
type RegistryService struct {
	repo      VLANRepository
	deviceID  string
	createdAt time.Time

	log     logger.Logger
	metrics *metric.Registry
}

// Option configures a RegistryService.
type Option func(*RegistryService)

// WithLogger sets the service logger.
func WithLogger(l logger.Logger) Option {
	return func(s *RegistryService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetrics sets the metrics registry. A nil registry disables metrics.
func WithMetrics(m *metric.Registry) Option {
	return func(s *RegistryService) {
		s.metrics = m
	}
}

// NewRegistryService creates a registry for deviceID over repo.
// An empty deviceID falls back to domain.DefaultDeviceID.
func NewRegistryService(repo VLANRepository, deviceID string, opts ...Option) *RegistryService {
	if deviceID == "" {
		deviceID = domain.DefaultDeviceID
	}

	s := &RegistryService{
		repo:      repo,
		deviceID:  deviceID,
		createdAt: time.Now(),
		log:       logger.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.log = s.log.With("device_id", deviceID)
	s.log.Info("white hole storage initialized",
		"max_vlans", repo.MaxVLANs(),
		"capacity", domain.Unbounded().String(),
	)
	return s
}

// DeviceID returns the device identifier.
func (s *RegistryService) DeviceID() string {
	return s.deviceID
}

// MaxVLANs returns the upper bound of the VLAN ID range.
func (s *RegistryService) MaxVLANs() int {
	return s.repo.MaxVLANs()
}

// ============================================================================
// VLAN Operations
// ============================================================================

// CreateVLAN registers a new VLAN. An empty name defaults to VLAN-<id>.
func (s *RegistryService) CreateVLAN(ctx context.Context, id int, name, description string) error {
	err := s.createVLAN(ctx, id, name, description)
	s.metrics.ObserveOp(metric.OpCreate, err)
	if err != nil {
		s.log.WithContext(ctx).Warn("create vlan failed", "vlan_id", id, "error", err)
		return err
	}

	s.log.WithContext(ctx).Debug("vlan created", "vlan_id", id)
	return nil
}

func (s *RegistryService) createVLAN(ctx context.Context, id int, name, description string) error {
	if err := domain.ValidateVLANID(id, s.repo.MaxVLANs()); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, domain.NewVLAN(id, name, description, s.deviceID)); err != nil {
		return err
	}
	s.syncSizes()
	return nil
}

// GetVLAN returns a copy of the VLAN with the given ID.
func (s *RegistryService) GetVLAN(ctx context.Context, id int) (*domain.VLAN, error) {
	vlan, err := s.repo.Get(ctx, id)
	s.metrics.ObserveOp(metric.OpGet, err)
	if err != nil {
		s.log.WithContext(ctx).Debug("vlan lookup missed", "vlan_id", id)
		return nil, err
	}
	return vlan, nil
}

// DeleteVLAN removes the VLAN with the given ID.
func (s *RegistryService) DeleteVLAN(ctx context.Context, id int) error {
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveOp(metric.OpDelete, err)
	if err != nil {
		s.log.WithContext(ctx).Warn("delete vlan failed", "vlan_id", id, "error", err)
		return err
	}

	s.syncSizes()
	s.log.WithContext(ctx).Info("vlan deleted", "vlan_id", id)
	return nil
}

// BulkCreateVLANs creates VLANs start..end inclusive named <prefix>-<id>.
// Failures are skipped; there is no rollback. IDs outside [1, MaxVLANs]
// can never be created, so the range is clipped to it first. It returns the
// number created.
func (s *RegistryService) BulkCreateVLANs(ctx context.Context, start, end int, prefix string) int {
	if prefix == "" {
		prefix = domain.DefaultVLANPrefix
	}
	log := s.log.WithContext(ctx)

	lo, hi := max(start, domain.MinVLANID), min(end, s.repo.MaxVLANs())
	skipLog := rate.Sometimes{First: 10, Interval: time.Second}
	created, skipped := 0, 0
	for id := lo; lo <= hi; id++ {
		err := s.createVLAN(ctx, id, domain.VLANName(prefix, id), "")
		s.metrics.ObserveOp(metric.OpCreate, err)
		if err != nil {
			skipped++
			skipLog.Do(func() {
				log.Debug("bulk create skipped vlan", "vlan_id", id, "error", err)
			})
		} else {
			created++
		}
		// hi may be math.MaxInt, where id++ wraps.
		if id == hi {
			break
		}
	}

	s.metrics.AddBulk("registry", created)
	log.Info("bulk created vlans",
		"created", created,
		"skipped", skipped,
		"start", start,
		"end", end,
		"prefix", prefix,
	)
	return created
}

// ListVLANs returns up to limit VLANs with ID >= from in ascending order.
// A limit of zero or less returns all of them.
func (s *RegistryService) ListVLANs(ctx context.Context, from, limit int) []*domain.VLAN {
	return s.repo.List(ctx, from, limit)
}

// ============================================================================
// Key/Value Operations
// ============================================================================

// StoreValue stores value under key, replacing any previous value.
func (s *RegistryService) StoreValue(ctx context.Context, key string, value any) *domain.Entry {
	entry := domain.NewEntry(key, value, s.deviceID)
	s.repo.Put(ctx, entry)
	s.syncSizes()

	s.log.WithContext(ctx).Debug("value stored", "key", key)
	return entry.Clone()
}

// RetrieveValue returns the value stored under key.
func (s *RegistryService) RetrieveValue(ctx context.Context, key string) (any, error) {
	entry, err := s.repo.Value(ctx, key)
	if err != nil {
		s.log.WithContext(ctx).Debug("value lookup missed", "key", key)
		return nil, err
	}
	return entry.Value, nil
}

// ============================================================================
// Statistics
// ============================================================================

// Stats returns a snapshot of the registry statistics.
func (s *RegistryService) Stats(_ context.Context) domain.Stats {
	return domain.Stats{
		DeviceID:            s.deviceID,
		StorageCapacity:     domain.Unbounded(),
		TotalVLANsSupported: s.repo.MaxVLANs(),
		ActiveVLANs:         s.repo.Count(),
		Windows16Support:    true,
		StorageEntries:      s.repo.EntryCount(),
		CreationTime:        s.createdAt,
		Status:              domain.StatusOperational,
	}
}

// Metadata returns the VLAN summary block used in exports.
func (s *RegistryService) Metadata(_ context.Context) domain.Metadata {
	return domain.Metadata{
		TotalVLANs:          s.repo.MaxVLANs(),
		ActiveVLANs:         s.repo.Count(),
		AvailableRange:      [2]int{domain.MinVLANID, s.repo.MaxVLANs()},
		Windows16Compatible: true,
	}
}

// ============================================================================
// Export / Import
// ============================================================================

// ExportConfig writes the registry summary and VLAN IDs to path.
// The target directory must already exist.
func (s *RegistryService) ExportConfig(ctx context.Context, path string) error {
	ids := s.repo.IDs()
	if ids == nil {
		ids = []int{}
	}

	doc := &snapshot.Document{
		DeviceID:     s.deviceID,
		VLANMetadata: s.Metadata(ctx),
		ActiveVLANs:  ids,
		StorageStats: s.Stats(ctx),
	}

	if err := snapshot.WriteFile(path, doc); err != nil {
		err = domain.ErrExportFailed.WithDetails(path).WithCause(err)
		s.metrics.ObserveTransfer(metric.OpExport, err)
		s.log.WithContext(ctx).Warn("export configuration failed", "path", path, "error", err)
		return err
	}

	s.metrics.ObserveTransfer(metric.OpExport, nil)
	s.log.WithContext(ctx).Info("configuration exported", "path", path, "vlans", len(ids))
	return nil
}

// ImportConfig creates a VLAN for every ID listed in the export file at path
// and returns how many were created. Names and descriptions are not part of
// the export, so restored VLANs get the default name. IDs that are taken or
// out of range are skipped. A file that cannot be read or parsed creates
// nothing.
func (s *RegistryService) ImportConfig(ctx context.Context, path string) (int, error) {
	manifest, err := snapshot.ReadFile(path)
	if err != nil {
		err = domain.ErrImportFailed.WithDetails(path).WithCause(err)
		s.metrics.ObserveTransfer(metric.OpImport, err)
		s.log.WithContext(ctx).Warn("import configuration failed", "path", path, "error", err)
		return 0, err
	}

	created := 0
	for _, id := range manifest.ActiveVLANs {
		err := s.createVLAN(ctx, id, "", "")
		s.metrics.ObserveOp(metric.OpCreate, err)
		if err != nil {
			s.log.WithContext(ctx).Debug("import skipped vlan", "vlan_id", id, "error", err)
			continue
		}
		created++
	}

	s.metrics.ObserveTransfer(metric.OpImport, nil)
	s.log.WithContext(ctx).Info("configuration imported",
		"path", path,
		"source_device", manifest.DeviceID,
		"listed", len(manifest.ActiveVLANs),
		"created", created,
	)
	return created, nil
}

func (s *RegistryService) syncSizes() {
	s.metrics.SetSizes(s.repo.Count(), s.repo.EntryCount())
}
