package match

import (
	"time"

	"github.com/cuemby/sysdb/pkg/store"
)

// ChildSet names which structural child collection any/all quantify over.
type ChildSet int

const (
	Attributes ChildSet = iota
	Services
	Metrics
)

// These interfaces are satisfied structurally by *store.Host (all three),
// *store.Service and *store.Metric (Attributes only) — match never imports
// the concrete store types, only store.Object plus whichever of these an
// object happens to implement.
type attributeHaver interface{ AttributeObjects() []store.Object }
type serviceHaver interface{ ServiceObjects() []store.Object }
type metricHaver interface{ MetricObjects() []store.Object }

func childrenOf(obj store.Object, set ChildSet) []store.Object {
	switch set {
	case Attributes:
		if h, ok := obj.(attributeHaver); ok {
			return h.AttributeObjects()
		}
	case Services:
		if h, ok := obj.(serviceHaver); ok {
			return h.ServiceObjects()
		}
	case Metrics:
		if h, ok := obj.(metricHaver); ok {
			return h.MetricObjects()
		}
	}
	return nil
}

// Any is true if at least one child in Set satisfies Sub. An object that
// doesn't expose Set at all (e.g. a Metric has no nested services) is
// treated the same as an empty set: Any is false.
type Any struct {
	Set ChildSet
	Sub Matcher
}

func (m Any) Match(obj store.Object, now time.Time) bool {
	for _, child := range childrenOf(obj, m.Set) {
		if m.Sub.Match(child, now) {
			return true
		}
	}
	return false
}

// All is true if every child in Set satisfies Sub, vacuously true over an
// empty (or unsupported) set.
type All struct {
	Set ChildSet
	Sub Matcher
}

func (m All) Match(obj store.Object, now time.Time) bool {
	for _, child := range childrenOf(obj, m.Set) {
		if !m.Sub.Match(child, now) {
			return false
		}
	}
	return true
}
