// Package memory provides in-memory storage for WhiteHole.
//
// A Store holds two ordered indexes:
//
//   - VLANs: VLAN ID -> record, bounded to [1, max]
//   - Entries: key -> value entry, unbounded
//
// Both are B-trees, so listings and exports come out in key order.
//
// Thread Safety:
//
// One RWMutex guards both indexes. Reads use RLock, writes use Lock.
// Records are cloned on the way in and on the way out.
package memory
