package domain

import "time"

// StatusOperational is the only status a registry reports.
const StatusOperational = "operational"

// Stats is a point-in-time view of a registry's counters.
type Stats struct {
	DeviceID            string    `json:"device_id" yaml:"device_id"`
	StorageCapacity     Capacity  `json:"storage_capacity" yaml:"storage_capacity"`
	TotalVLANsSupported int       `json:"total_vlans_supported" yaml:"total_vlans_supported"`
	ActiveVLANs         int       `json:"active_vlans" yaml:"active_vlans"`
	Windows16Support    bool      `json:"windows_16_support" yaml:"windows_16_support"`
	StorageEntries      int       `json:"storage_entries" yaml:"storage_entries"`
	CreationTime        time.Time `json:"creation_time" yaml:"creation_time"`
	Status              string    `json:"status" yaml:"status"`
}

// Metadata describes the VLAN space of a registry.
type Metadata struct {
	TotalVLANs          int    `json:"total_vlans" yaml:"total_vlans"`
	ActiveVLANs         int    `json:"active_vlans" yaml:"active_vlans"`
	AvailableRange      [2]int `json:"available_range" yaml:"available_range"`
	Windows16Compatible bool   `json:"windows_16_compatible" yaml:"windows_16_compatible"`
}
