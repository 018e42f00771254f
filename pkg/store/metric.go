package store

import (
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/ordered"
)

// StoreDescriptor names the backing time-series store a metric's samples
// live in (e.g. a round-robin archive file, a remote TSDB series). It is
// optional: a metric can be known to exist (a name under a host) before
// anything has recorded where its samples are kept.
type StoreDescriptor struct {
	Type string
	ID   string
}

func (d *StoreDescriptor) equal(o *StoreDescriptor) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Type == o.Type && d.ID == o.ID
}

// Metric is a named time series reported for a host, optionally pointing at
// the descriptor of where its samples are archived.
type Metric struct {
	timed

	host       string
	descriptor *StoreDescriptor
	attributes *ordered.Map[*Attribute]
}

func newMetric(host, name string, desc *StoreDescriptor, ts int64, backend string) *Metric {
	return &Metric{
		timed:      newTimed(name, ts, backend),
		host:       host,
		descriptor: desc,
		attributes: ordered.NewMap[*Attribute](),
	}
}

func (m *Metric) ObjectName() string { return m.name }

func (m *Metric) ObjectKind() Kind { return KindMetric }

func (m *Metric) GetField(id FieldID, now time.Time) datum.Datum {
	return m.getField(id, now)
}

// Host returns the name of the owning host.
func (m *Metric) Host() string { return m.host }

// Descriptor returns the metric's store descriptor, or nil if none has been
// recorded yet.
func (m *Metric) Descriptor() *StoreDescriptor { return m.descriptor }

// Attribute looks up a direct child attribute by key.
func (m *Metric) Attribute(key string) (*Attribute, bool) { return m.attributes.Get(key) }

// Attributes returns every direct child attribute, in key order.
func (m *Metric) Attributes() []*Attribute { return m.attributes.Values() }

// AttributeObjects satisfies pkg/match's structural "any/all attribute"
// lookup.
func (m *Metric) AttributeObjects() []Object {
	vs := m.attributes.Values()
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
