package store

import (
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
)

// Attribute is a single named datum attached to a host, service, or metric.
type Attribute struct {
	timed

	value datum.Datum
}

func newAttribute(name string, value datum.Datum, ts int64, backend string) *Attribute {
	return &Attribute{timed: newTimed(name, ts, backend), value: value.Clone()}
}

func (a *Attribute) ObjectName() string { return a.name }

func (a *Attribute) ObjectKind() Kind { return KindAttribute }

func (a *Attribute) GetField(id FieldID, now time.Time) datum.Datum {
	if id == FieldValue {
		return a.value.Clone()
	}
	return a.getField(id, now)
}

// Value returns the attribute's current datum.
func (a *Attribute) Value() datum.Datum { return a.value.Clone() }
