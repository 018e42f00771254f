package store

import (
	"context"
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/log"
	"github.com/cuemby/sysdb/pkg/metrics"
)

func (s *Store) instrument(entity string, result Result, interval int64) {
	metrics.UpdatesTotal.WithLabelValues(entity, result.String()).Inc()
	if result == ResultStored && interval > 0 {
		metrics.UpdateIntervalSeconds.Observe(time.Duration(interval * int64(time.Microsecond)).Seconds())
	}
}

// StoreHost records an observation of a host's existence at ts. It creates
// the host on first sight and returns ResultStored; a later call only
// returns ResultStored if the timestamp, update-interval estimate, or
// backend list actually changed.
func (s *Store) StoreHost(ctx context.Context, name string, ts int64) (Result, error) {
	if name == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(name)
	if !ok {
		h = newHost(name, ts, backend)
		s.hosts.Set(name, h)
		s.instrument("host", ResultStored, 0)
		log.WithHost(name).Debug().Int64("ts", ts).Msg("host created")
		return ResultStored, nil
	}

	result := settle(&h.timed, ts, backend, func(bool) bool { return false })
	s.instrument("host", result, h.updateInterval)
	return result, nil
}

// StoreService records an observation of a service running on host at ts.
// host must already exist.
func (s *Store) StoreService(ctx context.Context, host, name string, ts int64) (Result, error) {
	if host == "" || name == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(host)
	if !ok {
		return 0, ErrMissingParent
	}

	sv, ok := h.services.Get(name)
	if !ok {
		sv = newService(host, name, ts, backend)
		h.services.Set(name, sv)
		s.instrument("service", ResultStored, 0)
		return ResultStored, nil
	}

	result := settle(&sv.timed, ts, backend, func(bool) bool { return false })
	s.instrument("service", result, sv.updateInterval)
	return result, nil
}

// StoreMetric records an observation of a metric reported by host at ts,
// optionally (desc != nil) recording or updating its store descriptor. A
// descriptor supplied at a timestamp that does not strictly advance
// last_update is ignored rather than reverting a previously recorded one —
// see settle/touch for the shared no-op-at-equal-timestamp rule.
func (s *Store) StoreMetric(ctx context.Context, host, name string, desc *StoreDescriptor, ts int64) (Result, error) {
	if host == "" || name == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(host)
	if !ok {
		return 0, ErrMissingParent
	}

	m, ok := h.metrics.Get(name)
	if !ok {
		m = newMetric(host, name, desc, ts, backend)
		h.metrics.Set(name, m)
		s.instrument("metric", ResultStored, 0)
		return ResultStored, nil
	}

	result := settle(&m.timed, ts, backend, func(shouldApply bool) bool {
		if !shouldApply || desc == nil {
			return false
		}
		changed := !m.descriptor.equal(desc)
		m.descriptor = desc
		return changed
	})
	s.instrument("metric", result, m.updateInterval)
	return result, nil
}

// StoreAttribute records a key/value observation on host at ts. host must
// already exist.
func (s *Store) StoreAttribute(ctx context.Context, host, key string, value datum.Datum, ts int64) (Result, error) {
	if host == "" || key == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(host)
	if !ok {
		return 0, ErrMissingParent
	}
	return s.storeAttribute(h.attributes, host, key, value, ts, backend)
}

// StoreServiceAttribute records a key/value observation on a service at ts.
// host and service must already exist.
func (s *Store) StoreServiceAttribute(ctx context.Context, host, service, key string, value datum.Datum, ts int64) (Result, error) {
	if host == "" || service == "" || key == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(host)
	if !ok {
		return 0, ErrMissingParent
	}
	sv, ok := h.services.Get(service)
	if !ok {
		return 0, ErrMissingParent
	}
	return s.storeAttribute(sv.attributes, host, key, value, ts, backend)
}

// StoreMetricAttribute records a key/value observation on a metric at ts.
// host and metric must already exist.
func (s *Store) StoreMetricAttribute(ctx context.Context, host, metric, key string, value datum.Datum, ts int64) (Result, error) {
	if host == "" || metric == "" || key == "" {
		return 0, ErrInvalidArgument
	}
	backend := backendFromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.hosts.Get(host)
	if !ok {
		return 0, ErrMissingParent
	}
	me, ok := h.metrics.Get(metric)
	if !ok {
		return 0, ErrMissingParent
	}
	return s.storeAttribute(me.attributes, host, key, value, ts, backend)
}

func (s *Store) storeAttribute(attrs attributeContainer, host, key string, value datum.Datum, ts int64, backend string) (Result, error) {
	a, ok := attrs.Get(key)
	if !ok {
		attrs.Set(key, newAttribute(key, value, ts, backend))
		s.instrument("attribute", ResultStored, 0)
		return ResultStored, nil
	}

	result := settle(&a.timed, ts, backend, func(shouldApply bool) bool {
		if !shouldApply {
			return false
		}
		changed := !a.value.Equal(value)
		a.value = value.Clone()
		return changed
	})
	s.instrument("attribute", result, a.updateInterval)
	return result, nil
}

// attributeContainer is the ordered.Map[*Attribute] surface storeAttribute
// needs; it lets one helper serve host, service, and metric attribute sets
// without those three ordered.Map instantiations sharing a concrete type.
type attributeContainer interface {
	Get(key string) (*Attribute, bool)
	Set(key string, val *Attribute)
}
