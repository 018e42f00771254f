// Package store implements the in-memory, update-idempotent object store:
// hosts, and the services/metrics/attributes reachable from them. A single
// Store value is the whole database; callers obtain one with New and keep it
// for the life of the process — there is no on-disk persistence or
// clustering, by design (see SPEC_FULL.md §10).
package store

import (
	"sync"
	"time"

	"github.com/cuemby/sysdb/pkg/ordered"
)

// Store is the root handle for the object hierarchy. The zero value is not
// usable; construct one with New. All methods are safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	hosts *ordered.Map[*Host]
	clock func() time.Time
}

// New constructs an empty Store.
func New() *Store {
	return &Store{hosts: ordered.NewMap[*Host](), clock: time.Now}
}

// SetClock replaces the function the store's internal now() reports. FieldAge
// does not read it: GetField measures age against the now argument its
// caller passes.
func (s *Store) SetClock(fn func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = fn
}

func (s *Store) now() time.Time { return s.clock() }

// Clear discards every host, service, metric, and attribute, returning the
// store to its initial empty state.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hosts = ordered.NewMap[*Host]()
}

// Sizes reports the current object counts, satisfying pkg/metrics'
// StoreSizer interface for the periodic gauge collector.
func (s *Store) Sizes() (hosts, services, metrics, attributes int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts = s.hosts.Len()
	s.hosts.Ascend(func(h *Host) bool {
		attributes += h.attributes.Len()
		services += h.services.Len()
		metrics += h.metrics.Len()
		h.services.Ascend(func(sv *Service) bool {
			attributes += sv.attributes.Len()
			return true
		})
		h.metrics.Ascend(func(me *Metric) bool {
			attributes += me.attributes.Len()
			return true
		})
		return true
	})
	return
}
