// Package serialize renders a filtered projection of a store to JSON,
// streaming directly into an io.Writer rather than building an intermediate
// tree. Key order and the timestamp/duration formats are fixed: see the
// worked examples this package is tested against.
package serialize

import (
	"bufio"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/cuemby/sysdb/pkg/match"
	"github.com/cuemby/sysdb/pkg/metrics"
	"github.com/cuemby/sysdb/pkg/store"
)

// Flags selects which child collections to omit from the render entirely.
type Flags uint8

const (
	SkipAttributes Flags = 1 << iota
	SkipMetrics
	SkipServices

	SkipAll = SkipAttributes | SkipMetrics | SkipServices
)

const timestampLayout = "2006-01-02 15:04:05 -0700"

// ToJSON writes a JSON array of hosts to w. filter, if non-nil, is evaluated
// against every host to decide inclusion; if filter is an expression-based
// matcher (anything other than match.Any/match.All) it is re-applied at
// every nested level too, so a service/metric/attribute that fails it is
// omitted while siblings that pass still render — empty containers still
// appear as []. A structural match.Any/match.All names the host's own
// child set directly, so re-applying it one level down would ask a
// service or attribute for children it does not have; such filters are
// therefore evaluated only at the host level.
func ToJSON(w io.Writer, s *store.Store, filter match.Matcher, flags Flags) error {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.SerializeDurationSeconds)

	now := time.Now()
	bw := bufio.NewWriter(w)

	bw.WriteByte('[')
	first := true
	recurse := isExpressionFilter(filter)

	err := s.Iterate(func(h *store.Host) error {
		if filter != nil && !filter.Match(h, now) {
			return nil
		}
		if !first {
			bw.WriteByte(',')
		}
		first = false
		return writeHost(bw, h, filter, recurse, flags, now)
	})
	if err != nil && !errors.Is(err, store.ErrEmptyStore) {
		return err
	}
	bw.WriteByte(']')
	return bw.Flush()
}

func isExpressionFilter(m match.Matcher) bool {
	if m == nil {
		return false
	}
	switch m.(type) {
	case match.Any, match.All:
		return false
	default:
		return true
	}
}

func writeHost(w *bufio.Writer, h *store.Host, filter match.Matcher, recurse bool, flags Flags, now time.Time) error {
	w.WriteByte('{')
	writeCommonFields(w, h.Name(), h.LastUpdate(), h.UpdateInterval(), h.Backends())

	if flags&SkipAttributes == 0 {
		w.WriteByte(',')
		writeAttributes(w, h.Attributes(), filter, recurse, now)
	}
	if flags&SkipMetrics == 0 {
		w.WriteByte(',')
		writeMetrics(w, h.Metrics(), filter, recurse, now)
	}
	if flags&SkipServices == 0 {
		w.WriteByte(',')
		writeServices(w, h.Services(), filter, recurse, now)
	}
	w.WriteByte('}')
	return nil
}

func writeServices(w *bufio.Writer, services []*store.Service, filter match.Matcher, recurse bool, now time.Time) {
	w.WriteString(`"services":[`)
	first := true
	for _, sv := range services {
		if recurse && filter != nil && !filter.Match(sv, now) {
			continue
		}
		if !first {
			w.WriteByte(',')
		}
		first = false
		w.WriteByte('{')
		writeCommonFields(w, sv.Name(), sv.LastUpdate(), sv.UpdateInterval(), sv.Backends())
		w.WriteByte(',')
		writeAttributes(w, sv.Attributes(), filter, recurse, now)
		w.WriteByte('}')
	}
	w.WriteByte(']')
}

func writeMetrics(w *bufio.Writer, ms []*store.Metric, filter match.Matcher, recurse bool, now time.Time) {
	w.WriteString(`"metrics":[`)
	first := true
	for _, m := range ms {
		if recurse && filter != nil && !filter.Match(m, now) {
			continue
		}
		if !first {
			w.WriteByte(',')
		}
		first = false
		w.WriteByte('{')
		writeCommonFields(w, m.Name(), m.LastUpdate(), m.UpdateInterval(), m.Backends())
		w.WriteByte(',')
		writeAttributes(w, m.Attributes(), filter, recurse, now)
		w.WriteByte('}')
	}
	w.WriteByte(']')
}

func writeAttributes(w *bufio.Writer, attrs []*store.Attribute, filter match.Matcher, recurse bool, now time.Time) {
	w.WriteString(`"attributes":[`)
	first := true
	for _, a := range attrs {
		if recurse && filter != nil && !filter.Match(a, now) {
			continue
		}
		if !first {
			w.WriteByte(',')
		}
		first = false
		w.WriteByte('{')
		writeKey(w, "name")
		writeJSON(w, a.Name())
		w.WriteByte(',')
		writeKey(w, "value")
		v, _ := a.Value().MarshalJSON()
		w.Write(v)
		w.WriteByte(',')
		writeTimingFields(w, a.LastUpdate(), a.UpdateInterval(), a.Backends())
		w.WriteByte('}')
	}
	w.WriteByte(']')
}

// writeCommonFields emits name, last_update, update_interval, backends — the
// prefix shared by host, service, and metric nodes.
func writeCommonFields(w *bufio.Writer, name string, lastUpdate, interval int64, backends []string) {
	writeKey(w, "name")
	writeJSON(w, name)
	w.WriteByte(',')
	writeTimingFields(w, lastUpdate, interval, backends)
}

// writeTimingFields emits last_update, update_interval, backends — the
// portion also shared by attribute nodes, which have no name-first
// ordering quirk of their own.
func writeTimingFields(w *bufio.Writer, lastUpdate, interval int64, backends []string) {
	writeKey(w, "last_update")
	writeJSON(w, time.UnixMicro(lastUpdate).UTC().Format(timestampLayout))
	w.WriteByte(',')
	writeKey(w, "update_interval")
	writeJSON(w, (time.Duration(interval) * time.Microsecond).String())
	w.WriteByte(',')
	writeKey(w, "backends")
	if len(backends) == 0 {
		w.WriteString("[]")
	} else {
		b, _ := json.Marshal(backends)
		w.Write(b)
	}
}

func writeKey(w *bufio.Writer, key string) {
	w.WriteByte('"')
	w.WriteString(key)
	w.WriteString(`":`)
}

func writeJSON(w *bufio.Writer, v string) {
	b, _ := json.Marshal(v)
	w.Write(b)
}
