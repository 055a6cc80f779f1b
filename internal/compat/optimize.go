package compat

import (
	"github.com/jinzhu/copier"

	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// Optimization values applied by Optimize.
const (
	OptimizedMTU      = 9000
	OptimizedPriority = "high"
	FlowControlOn     = "enabled"
)

// OptimizedVLAN is a VLAN annotated with Windows 16 tuning fields.
type OptimizedVLAN struct {
	domain.VLAN `yaml:",inline"`

	Windows16Optimized bool   `json:"windows_16_optimized" yaml:"windows_16_optimized"`
	MTU                int    `json:"mtu" yaml:"mtu"`
	QoSEnabled         bool   `json:"qos_enabled" yaml:"qos_enabled"`
	Priority           string `json:"priority" yaml:"priority"`
	FlowControl        string `json:"flow_control" yaml:"flow_control"`
}

// Optimize returns an annotated copy of v. The input is not modified.
func (h *Helper) Optimize(v *domain.VLAN) (*OptimizedVLAN, error) {
	if v == nil {
		return nil, domain.ErrInvalidArgument.WithDetails("vlan is nil")
	}

	out := &OptimizedVLAN{
		Windows16Optimized: true,
		MTU:                OptimizedMTU,
		QoSEnabled:         true,
		Priority:           OptimizedPriority,
		FlowControl:        FlowControlOn,
	}
	if err := copier.Copy(&out.VLAN, v); err != nil {
		return nil, domain.ErrInvalidArgument.WithCause(err)
	}
	return out, nil
}
