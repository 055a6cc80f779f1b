// Package domain defines the core domain models for WhiteHole.
//
// Domain models are plain values without IO dependencies:
//
//   - VLAN: a registry record keyed by an integer in [1, max]
//   - Entry: a free-form key/value pair
//   - Capacity: Bounded(n) or Unbounded
//   - Stats, Metadata: read-only views of a registry
//   - Errors: coded domain errors (WH-<AREA>-<NNNN>)
package domain
