package compat

import (
	"slices"

	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// Profile constants.
const (
	Version            = "16.0"
	CompatibilityMode  = "full"
	StorageIntegration = "white_hole"
)

// Performance is the advertised performance block.
type Performance struct {
	Throughput  string `json:"throughput" yaml:"throughput"`
	Latency     string `json:"latency" yaml:"latency"`
	Reliability string `json:"reliability" yaml:"reliability"`
}

// Capabilities describes what the helper supports.
type Capabilities struct {
	Version            string      `json:"version" yaml:"version"`
	CompatibilityMode  string      `json:"compatibility_mode" yaml:"compatibility_mode"`
	Features           []string    `json:"features" yaml:"features"`
	Services           []string    `json:"services" yaml:"services"`
	MaxVLANs           int         `json:"max_vlans" yaml:"max_vlans"`
	StorageIntegration string      `json:"storage_integration" yaml:"storage_integration"`
	Performance        Performance `json:"performance" yaml:"performance"`
}

// Profile is the fixed configuration a Helper is built from.
type Profile struct {
	Capabilities
}

// DefaultProfile returns the Windows 16 profile.
func DefaultProfile() Profile {
	return Profile{Capabilities{
		Version:           Version,
		CompatibilityMode: CompatibilityMode,
		Features: []string{
			"advanced_vlan_management",
			"high_speed_storage_access",
			"quantum_entanglement_support",
			"white_hole_integration",
		},
		Services: []string{
			"network_stack_v16",
			"vlan_tagging_v16",
			"storage_interface_v16",
			"quantum_bridge_v16",
		},
		MaxVLANs:           domain.DefaultMaxVLANs,
		StorageIntegration: StorageIntegration,
		Performance: Performance{
			Throughput:  "infinite",
			Latency:     "near_zero",
			Reliability: "99.9999%",
		},
	}}
}

func (c Capabilities) clone() Capabilities {
	c.Features = slices.Clone(c.Features)
	c.Services = slices.Clone(c.Services)
	return c
}
