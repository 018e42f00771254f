package store

import (
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/ordered"
)

// Host is the root object of the hierarchy: every service, metric, and
// host-level attribute is reached through one.
type Host struct {
	timed

	attributes *ordered.Map[*Attribute]
	services   *ordered.Map[*Service]
	metrics    *ordered.Map[*Metric]
}

func newHost(name string, ts int64, backend string) *Host {
	return &Host{
		timed:      newTimed(name, ts, backend),
		attributes: ordered.NewMap[*Attribute](),
		services:   ordered.NewMap[*Service](),
		metrics:    ordered.NewMap[*Metric](),
	}
}

func (h *Host) ObjectName() string { return h.name }

func (h *Host) ObjectKind() Kind { return KindHost }

func (h *Host) GetField(id FieldID, now time.Time) datum.Datum {
	return h.getField(id, now)
}

// Service looks up a direct child service by name.
func (h *Host) Service(name string) (*Service, bool) { return h.services.Get(name) }

// Metric looks up a direct child metric by name.
func (h *Host) Metric(name string) (*Metric, bool) { return h.metrics.Get(name) }

// Attribute looks up a direct child attribute by key.
func (h *Host) Attribute(key string) (*Attribute, bool) { return h.attributes.Get(key) }

// Services returns every direct child service, in name order.
func (h *Host) Services() []*Service { return h.services.Values() }

// Metrics returns every direct child metric, in name order.
func (h *Host) Metrics() []*Metric { return h.metrics.Values() }

// Attributes returns every direct child attribute, in key order.
func (h *Host) Attributes() []*Attribute { return h.attributes.Values() }

// ServiceObjects satisfies pkg/match's structural "any/all service" lookup
// without pkg/match importing pkg/store's concrete types.
func (h *Host) ServiceObjects() []Object {
	vs := h.services.Values()
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// MetricObjects satisfies pkg/match's structural "any/all metric" lookup.
func (h *Host) MetricObjects() []Object {
	vs := h.metrics.Values()
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

// AttributeObjects satisfies pkg/match's structural "any/all attribute"
// lookup.
func (h *Host) AttributeObjects() []Object {
	vs := h.attributes.Values()
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
