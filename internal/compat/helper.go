package compat

import (
	"context"
	"strconv"

	"github.com/yndnr/whitehole-go/internal/core/domain"
	"github.com/yndnr/whitehole-go/internal/telemetry/logger"
)

const (
	bulkNamePrefix = "WIN16-VLAN"
	progressEvery  = 100
)

// VLANCreator is the part of the registry the helper needs.
type VLANCreator interface {
	CreateVLAN(ctx context.Context, id int, name, description string) error
}

// Helper is the Windows 16 compatibility helper for one device.
type Helper struct {
	deviceID string
	profile  Profile
	log      logger.Logger
}

// Option configures a Helper.
type Option func(*Helper)

// WithLogger sets the helper logger.
func WithLogger(l logger.Logger) Option {
	return func(h *Helper) {
		if l != nil {
			h.log = l
		}
	}
}

// New creates a helper for deviceID.
func New(deviceID string, opts ...Option) *Helper {
	if deviceID == "" {
		deviceID = domain.DefaultDeviceID
	}

	h := &Helper{
		deviceID: deviceID,
		profile:  DefaultProfile(),
		log:      logger.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	h.log = h.log.With("component", "win16", "device_id", deviceID)
	return h
}

// DeviceID returns the device identifier.
func (h *Helper) DeviceID() string {
	return h.deviceID
}

// Initialize starts the helper services. It only reports them; there is
// nothing to start.
func (h *Helper) Initialize(ctx context.Context) error {
	log := h.log.WithContext(ctx)
	log.Info("initializing windows 16 support",
		"version", h.profile.Version,
		"compatibility_mode", h.profile.CompatibilityMode,
	)

	for _, svc := range h.profile.Services {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Info("starting service", "service", svc)
	}

	log.Info("windows 16 support initialized")
	return nil
}

// Capabilities returns a copy of the capability descriptor.
func (h *Helper) Capabilities() Capabilities {
	return h.profile.clone()
}

// BulkCreate creates count VLANs starting at start through c and returns how
// many succeeded. Failed IDs are skipped.
func (h *Helper) BulkCreate(ctx context.Context, c VLANCreator, start, count int) int {
	if count <= 0 {
		return 0
	}

	log := h.log.WithContext(ctx)
	log.Info("creating windows 16 optimized vlans", "start", start, "count", count)

	created := 0
	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			break
		}

		id := start + i
		if err := c.CreateVLAN(ctx, id, domain.VLANName(bulkNamePrefix, id), bulkDescription(id)); err != nil {
			continue
		}
		created++
		if (i+1)%progressEvery == 0 {
			log.Info("bulk create progress", "done", i+1, "count", count)
		}
	}

	log.Info("windows 16 vlans created", "created", created, "count", count)
	return created
}

func bulkDescription(id int) string {
	return "Windows 16 optimized VLAN " + strconv.Itoa(id)
}
