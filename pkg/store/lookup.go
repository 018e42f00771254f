package store

import "github.com/cuemby/sysdb/pkg/metrics"

// HasHost reports whether a host by that name is currently known.
func (s *Store) HasHost(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.hosts.Get(name)
	return ok
}

// GetHost returns the host by that name, if any.
//
// The returned pointer is a live handle into the store, not a snapshot —
// the Go GC keeps it alive for as long as the caller holds it, which is the
// memory-safety half of the refcounted "host_t*" lookup this replaces, but
// it does not give the same mutation-safety: reading fields off a handle
// after GetHost returns can race with a concurrent update. Callers that need
// a consistent view should do so through Iterate or pkg/serialize, which
// hold the store's read lock for the full traversal.
func (s *Store) GetHost(name string) (*Host, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hosts.Get(name)
}

// Hosts returns every host, in name order.
func (s *Store) Hosts() []*Host {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hosts.Values()
}

// Iterate calls fn once per host, in name order, while holding the store's
// read lock for the whole traversal. It returns ErrEmptyStore if the store
// holds no hosts, or whatever error fn returns, stopping early in that case.
func (s *Store) Iterate(fn func(h *Host) error) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.IterateDurationSeconds)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.hosts.Len() == 0 {
		return ErrEmptyStore
	}
	var err error
	s.hosts.Ascend(func(h *Host) bool {
		if e := fn(h); e != nil {
			err = e
			return false
		}
		return true
	})
	return err
}
