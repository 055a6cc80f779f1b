package domain

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// CapacityKind tells whether a capacity has a finite limit.
type CapacityKind int

const (
	// CapacityBounded is a finite capacity.
	CapacityBounded CapacityKind = iota
	// CapacityUnbounded reports no upper limit.
	CapacityUnbounded
)

// UnboundedLabel is the serialized form of an unbounded capacity.
const UnboundedLabel = "infinite"

// Capacity is either Bounded(n) or Unbounded.
type Capacity struct {
	Kind  CapacityKind
	Limit int64
}

// Bounded returns a finite capacity of n.
func Bounded(n int64) Capacity {
	return Capacity{Kind: CapacityBounded, Limit: n}
}

// Unbounded returns the unbounded capacity.
func Unbounded() Capacity {
	return Capacity{Kind: CapacityUnbounded}
}

// IsUnbounded reports whether the capacity has no limit.
func (c Capacity) IsUnbounded() bool {
	return c.Kind == CapacityUnbounded
}

func (c Capacity) String() string {
	if c.IsUnbounded() {
		return UnboundedLabel
	}
	return strconv.FormatInt(c.Limit, 10)
}

// MarshalJSON encodes unbounded as "infinite" and bounded as a number.
func (c Capacity) MarshalJSON() ([]byte, error) {
	if c.IsUnbounded() {
		return json.Marshal(UnboundedLabel)
	}
	return json.Marshal(c.Limit)
}

// UnmarshalJSON accepts "infinite" or an integer.
func (c *Capacity) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s != UnboundedLabel {
			return ErrInvalidArgument.WithDetailsf("unknown capacity %q", s)
		}
		*c = Unbounded()
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return ErrInvalidArgument.WithDetails("capacity must be a number or \"infinite\"").WithCause(err)
	}
	*c = Bounded(n)
	return nil
}

// MarshalYAML renders the capacity the same way as JSON.
func (c Capacity) MarshalYAML() (any, error) {
	if c.IsUnbounded() {
		return UnboundedLabel, nil
	}
	return c.Limit, nil
}
