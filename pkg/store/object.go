package store

import (
	"context"
	"strings"
	"time"

	"github.com/cuemby/sysdb/pkg/datum"
)

// Object is satisfied by Host, Service, Metric, and Attribute. It's the
// handle pkg/match and pkg/serialize walk: both packages only ever see
// objects through this interface, never the concrete store types.
type Object interface {
	ObjectName() string
	ObjectKind() Kind
	GetField(id FieldID, now time.Time) datum.Datum
}

type backendCtxKey struct{}

// WithBackend attaches the name of the backend performing an update to ctx.
// The original C implementation reads the current backend off thread-local
// plugin context; a context.Context value is the idiomatic Go analogue, and
// keeps the Store method signatures matching spec.md's store_*(name, ts)
// shape instead of bolting on an extra parameter.
func WithBackend(ctx context.Context, backend string) context.Context {
	return context.WithValue(ctx, backendCtxKey{}, backend)
}

func backendFromContext(ctx context.Context) string {
	b, _ := ctx.Value(backendCtxKey{}).(string)
	return b
}

// timed is the common base embedded by every store object: a name, the
// last-seen timestamp, the estimated update interval, and the set of
// backends that have contributed an observation.
type timed struct {
	name           string
	lastUpdate     int64 // microseconds since the Unix epoch
	updateInterval int64 // microseconds
	backends       []string
}

func newTimed(name string, ts int64, backend string) timed {
	t := timed{name: name, lastUpdate: ts}
	t.addBackend(backend)
	return t
}

func (t *timed) Name() string { return t.name }

func (t *timed) LastUpdate() int64 { return t.lastUpdate }

func (t *timed) UpdateInterval() int64 { return t.updateInterval }

func (t *timed) Backends() []string { return append([]string(nil), t.backends...) }

func (t *timed) addBackend(name string) bool {
	if name == "" {
		return false
	}
	for _, b := range t.backends {
		if strings.EqualFold(b, name) {
			return false
		}
	}
	t.backends = append(t.backends, name)
	return true
}

// nextInterval implements the EMA update-interval estimator. The literal
// formula (prior*9+delta)/10 only holds once an interval has been seeded; on
// the first real delta after creation (prior==0) it is taken verbatim as the
// interval rather than decayed towards zero, and a repeated timestamp
// (delta==0) leaves the estimate untouched.
func nextInterval(prior, delta int64) int64 {
	switch {
	case delta == 0:
		return prior
	case prior == 0:
		return delta
	default:
		return (prior*9 + delta) / 10
	}
}

// touch applies a proposed timestamp and contributing backend to t. It
// reports whether anything timing-related changed (timestamp, interval, or
// backend list) and whether the update was stale (ts strictly before the
// object's last_update, in which case nothing at all was mutated).
func (t *timed) touch(ts int64, backend string) (mutated, stale bool) {
	switch {
	case ts < t.lastUpdate:
		return false, true
	case ts > t.lastUpdate:
		delta := ts - t.lastUpdate
		t.updateInterval = nextInterval(t.updateInterval, delta)
		t.lastUpdate = ts
		mutated = true
	}
	if t.addBackend(backend) {
		mutated = true
	}
	return mutated, false
}

// getField answers the fields every object shares; FieldValue is handled by
// Attribute itself since no other object carries a value.
func (t *timed) getField(id FieldID, now time.Time) datum.Datum {
	switch id {
	case FieldName:
		return datum.String(t.name)
	case FieldLastUpdate:
		return datum.Datetime(t.lastUpdate)
	case FieldAge:
		return datum.Datetime(now.UnixMicro() - t.lastUpdate)
	case FieldInterval:
		return datum.Datetime(t.updateInterval)
	case FieldBackend:
		return datum.StringArray(t.backends)
	default:
		return datum.Null()
	}
}

// settle runs the common "apply timestamp, then apply value if the
// timestamp strictly advanced" sequence shared by every update entry
// point, and reduces the two booleans to the Result the caller returns.
// applyValue is called with whether the timestamp strictly advanced past
// the object's prior last_update; it reports whether it mutated anything.
func settle(t *timed, ts int64, backend string, applyValue func(shouldApply bool) bool) Result {
	priorLast := t.lastUpdate
	mutated, stale := t.touch(ts, backend)
	if stale {
		return ResultUnchanged
	}
	if applyValue(ts > priorLast) || mutated {
		return ResultStored
	}
	return ResultUnchanged
}
