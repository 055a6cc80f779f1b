package domain

import "time"

// Entry is a free-form key/value pair held next to the VLAN records.
// Writes are last-write-wins; no history is kept.
type Entry struct {
	Key      string    `json:"key" yaml:"key"`
	Value    any       `json:"value" yaml:"value"`
	StoredAt time.Time `json:"stored_at" yaml:"stored_at"`
	DeviceID string    `json:"device_id" yaml:"device_id"`
}

// NewEntry creates an entry stamped with the current time.
func NewEntry(key string, value any, deviceID string) *Entry {
	return &Entry{
		Key:      key,
		Value:    value,
		StoredAt: time.Now(),
		DeviceID: deviceID,
	}
}

// Clone returns a shallow copy of the entry. Value is shared.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	return &c
}
