package snapshot

import "github.com/yndnr/whitehole-go/internal/core/domain"

// Document is the full export file.
type Document struct {
	DeviceID     string          `json:"device_id"`
	VLANMetadata domain.Metadata `json:"vlan_metadata"`
	ActiveVLANs  []int           `json:"active_vlans"`
	StorageStats domain.Stats    `json:"storage_stats"`
}

// Manifest is the part of an export file used on import.
type Manifest struct {
	DeviceID    string
	ActiveVLANs []int
}
