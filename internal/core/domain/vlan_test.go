package domain

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestNewVLAN(t *testing.T) {
	v := NewVLAN(10, "Data-VLAN", "Data transfer network", DefaultDeviceID)

	if v.ID != 10 || v.Name != "Data-VLAN" || v.Description != "Data transfer network" {
		t.Fatalf("unexpected vlan: %+v", v)
	}
	if v.Status != VLANStatusActive {
		t.Errorf("Status = %q, want %q", v.Status, VLANStatusActive)
	}
	if v.DeviceID != DefaultDeviceID {
		t.Errorf("DeviceID = %q, want %q", v.DeviceID, DefaultDeviceID)
	}
	if !v.Windows16Compatible {
		t.Error("Windows16Compatible should be true")
	}
	if v.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestNewVLAN_DefaultName(t *testing.T) {
	v := NewVLAN(42, "", "", "dev")
	if v.Name != "VLAN-42" {
		t.Errorf("Name = %q, want %q", v.Name, "VLAN-42")
	}
}

func TestValidateVLANID(t *testing.T) {
	tests := []struct {
		name    string
		id      int
		max     int
		wantErr bool
	}{
		{"lower bound", 1, 100, false},
		{"upper bound", 100, 100, false},
		{"zero", 0, 100, true},
		{"negative", -5, 100, true},
		{"above max", 101, 100, true},
		{"default max", DefaultMaxVLANs, DefaultMaxVLANs, false},
		{"default max plus one", DefaultMaxVLANs + 1, DefaultMaxVLANs, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateVLANID(tt.id, tt.max)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateVLANID(%d, %d) error = %v, wantErr %v", tt.id, tt.max, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrVLANOutOfRange) {
				t.Errorf("error = %v, want ErrVLANOutOfRange", err)
			}
		})
	}
}

func TestVLAN_Clone(t *testing.T) {
	v := NewVLAN(7, "seven", "", "dev")
	c := v.Clone()
	c.Name = "changed"

	if v.Name != "seven" {
		t.Error("Clone should not share state with the original")
	}

	var nilVLAN *VLAN
	if nilVLAN.Clone() != nil {
		t.Error("Clone of nil should be nil")
	}
}

func TestCapacity_JSON(t *testing.T) {
	tests := []struct {
		name string
		c    Capacity
		want string
	}{
		{"unbounded", Unbounded(), `"infinite"`},
		{"bounded", Bounded(1000000), `1000000`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.c)
			if err != nil {
				t.Fatalf("Marshal: %v", err)
			}
			if string(b) != tt.want {
				t.Fatalf("Marshal = %s, want %s", b, tt.want)
			}

			var back Capacity
			if err := json.Unmarshal(b, &back); err != nil {
				t.Fatalf("Unmarshal: %v", err)
			}
			if back != tt.c {
				t.Errorf("Unmarshal = %+v, want %+v", back, tt.c)
			}
		})
	}
}

func TestCapacity_UnmarshalRejectsUnknownLabel(t *testing.T) {
	var c Capacity
	if err := json.Unmarshal([]byte(`"huge"`), &c); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Unmarshal error = %v, want ErrInvalidArgument", err)
	}
	if err := json.Unmarshal([]byte(`true`), &c); err == nil {
		t.Fatal("Unmarshal of bool should fail")
	}
}

func TestCapacity_String(t *testing.T) {
	if got := Unbounded().String(); got != "infinite" {
		t.Errorf("String() = %q, want infinite", got)
	}
	if got := Bounded(12).String(); got != "12" {
		t.Errorf("String() = %q, want 12", got)
	}
}
