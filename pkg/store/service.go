package store

import (
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
	"github.com/cuemby/sysdb/pkg/ordered"
)

// Service is a named unit of work running on a host (e.g. a systemd unit, a
// Kubernetes pod) along with its own attributes.
type Service struct {
	timed

	host       string
	attributes *ordered.Map[*Attribute]
}

func newService(host, name string, ts int64, backend string) *Service {
	return &Service{
		timed:      newTimed(name, ts, backend),
		host:       host,
		attributes: ordered.NewMap[*Attribute](),
	}
}

func (s *Service) ObjectName() string { return s.name }

func (s *Service) ObjectKind() Kind { return KindService }

func (s *Service) GetField(id FieldID, now time.Time) datum.Datum {
	return s.getField(id, now)
}

// Host returns the name of the owning host.
func (s *Service) Host() string { return s.host }

// Attribute looks up a direct child attribute by key.
func (s *Service) Attribute(key string) (*Attribute, bool) { return s.attributes.Get(key) }

// Attributes returns every direct child attribute, in key order.
func (s *Service) Attributes() []*Attribute { return s.attributes.Values() }

// AttributeObjects satisfies pkg/match's structural "any/all attribute"
// lookup.
func (s *Service) AttributeObjects() []Object {
	vs := s.attributes.Values()
	out := make([]Object, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}
