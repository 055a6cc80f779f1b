// Package domain defines the core domain models for WhiteHole.
package domain

import (
	"fmt"
	"time"
)

// VLAN constraints.
const (
	// MinVLANID is the lowest valid VLAN identifier.
	MinVLANID = 1

	// DefaultMaxVLANs is the number of VLAN IDs a registry supports
	// when no other bound is configured.
	DefaultMaxVLANs = 1_000_000

	// DefaultVLANPrefix prefixes generated VLAN names.
	DefaultVLANPrefix = "VLAN"

	// VLANStatusActive is the status assigned on creation.
	VLANStatusActive = "active"

	// DefaultDeviceID identifies the demonstration device.
	DefaultDeviceID = "phuhanddevice-81"
)

// VLAN is a registry record identified by a bounded integer key.
type VLAN struct {
	// ID is the VLAN identifier in [1, max]. Immutable once created.
	ID int `json:"id" yaml:"id"`

	// Name defaults to "VLAN-<id>" when created without one.
	Name string `json:"name" yaml:"name"`

	// Description is free text.
	Description string `json:"description" yaml:"description"`

	// Status is always "active" for registered VLANs.
	Status string `json:"status" yaml:"status"`

	// CreatedAt is captured when the VLAN is registered.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`

	// DeviceID is the owning registry's device identifier.
	DeviceID string `json:"device_id" yaml:"device_id"`

	// Windows16Compatible is always true; kept for the record shape.
	Windows16Compatible bool `json:"windows_16_compatible" yaml:"windows_16_compatible"`
}

// NewVLAN builds an active VLAN record. An empty name is replaced with the
// default "VLAN-<id>" label.
func NewVLAN(id int, name, description, deviceID string) *VLAN {
	if name == "" {
		name = VLANName(DefaultVLANPrefix, id)
	}
	return &VLAN{
		ID:                  id,
		Name:                name,
		Description:         description,
		Status:              VLANStatusActive,
		CreatedAt:           time.Now(),
		DeviceID:            deviceID,
		Windows16Compatible: true,
	}
}

// VLANName returns "<prefix>-<id>".
func VLANName(prefix string, id int) string {
	return fmt.Sprintf("%s-%d", prefix, id)
}

// ValidateVLANID checks that id lies in [MinVLANID, max].
func ValidateVLANID(id, max int) error {
	if id < MinVLANID || id > max {
		return ErrVLANOutOfRange.WithDetailsf("vlan id %d out of range (%d-%d)", id, MinVLANID, max)
	}
	return nil
}

// Clone returns a copy of the VLAN.
func (v *VLAN) Clone() *VLAN {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
