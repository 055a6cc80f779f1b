package memory

import (
	"context"
	"sync"

	"github.com/tidwall/btree"

	"github.com/yndnr/whitehole-go/internal/core/domain"
)

// btreeDegree is the node degree for both indexes. Zero picks the library default.
const btreeDegree = 0

// Store provides in-memory VLAN and key/value storage.
type Store struct {
	// Primary index: VLAN ID -> VLAN
	vlans *btree.Map[int, *domain.VLAN]

	// Key/value entries: key -> Entry
	entries *btree.Map[string, *domain.Entry]

	maxVLANs int

	mu sync.RWMutex
}

// Option configures the Store.
type Option func(*Store)

// WithMaxVLANs sets the upper bound of the VLAN ID space.
// Values below 1 are ignored.
func WithMaxVLANs(max int) Option {
	return func(s *Store) {
		if max >= domain.MinVLANID {
			s.maxVLANs = max
		}
	}
}

// New creates a new in-memory store.
func New(opts ...Option) *Store {
	s := &Store{
		vlans:    btree.NewMap[int, *domain.VLAN](btreeDegree),
		entries:  btree.NewMap[string, *domain.Entry](btreeDegree),
		maxVLANs: domain.DefaultMaxVLANs,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// MaxVLANs returns the upper bound of the VLAN ID space.
func (s *Store) MaxVLANs() int {
	return s.maxVLANs
}

// Create registers a new VLAN.
// Returns ErrVLANOutOfRange or ErrVLANExists without touching the index.
func (s *Store) Create(_ context.Context, vlan *domain.VLAN) error {
	if err := domain.ValidateVLANID(vlan.ID, s.maxVLANs); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vlans.Get(vlan.ID); ok {
		return domain.ErrVLANExists.WithDetailsf("vlan %d already exists", vlan.ID)
	}

	s.vlans.Set(vlan.ID, vlan.Clone())
	return nil
}

// Get retrieves a VLAN by ID.
func (s *Store) Get(_ context.Context, id int) (*domain.VLAN, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	vlan, ok := s.vlans.Get(id)
	if !ok {
		return nil, domain.ErrVLANNotFound.WithDetailsf("vlan %d", id)
	}
	return vlan.Clone(), nil
}

// Delete removes a VLAN by ID.
func (s *Store) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.vlans.Delete(id); !ok {
		return domain.ErrVLANNotFound.WithDetailsf("vlan %d", id)
	}
	return nil
}

// Count returns the number of registered VLANs.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vlans.Len()
}

// IDs returns all registered VLAN IDs in ascending order.
func (s *Store) IDs() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vlans.Keys()
}

// List returns up to limit VLANs with ID >= from, in ascending order.
// A limit <= 0 returns everything from the pivot on.
func (s *Store) List(_ context.Context, from, limit int) []*domain.VLAN {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.VLAN
	s.vlans.Ascend(from, func(_ int, vlan *domain.VLAN) bool {
		out = append(out, vlan.Clone())
		return limit <= 0 || len(out) < limit
	})
	return out
}

// Put stores an entry, replacing any entry with the same key.
func (s *Store) Put(_ context.Context, entry *domain.Entry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries.Set(entry.Key, entry.Clone())
}

// Value retrieves the entry stored under key.
func (s *Store) Value(_ context.Context, key string) (*domain.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.entries.Get(key)
	if !ok {
		return nil, domain.ErrKeyNotFound.WithDetailsf("key %q", key)
	}
	return entry.Clone(), nil
}

// EntryCount returns the number of stored entries.
func (s *Store) EntryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Len()
}
