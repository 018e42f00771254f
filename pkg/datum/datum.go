// Package datum implements the tagged value carried by every attribute and
// produced by every expression evaluation: one of integer, decimal, string,
// datetime, binary, or a typed array of any of those.
package datum

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Kind tags the concrete representation held by a Datum.
type Kind uint8

const (
	// KindNull marks the absence of a value — returned by GetField for a
	// field the object does not carry (e.g. FieldValue on a non-attribute).
	KindNull Kind = iota
	KindInteger
	KindDecimal
	KindString
	KindDatetime
	KindBinary
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInteger:
		return "integer"
	case KindDecimal:
		return "decimal"
	case KindString:
		return "string"
	case KindDatetime:
		return "datetime"
	case KindBinary:
		return "binary"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Datum is a tagged, immutable-by-convention value. Zero value is KindNull.
type Datum struct {
	kind     Kind
	elemKind Kind // valid only when kind == KindArray

	i      int64
	f      float64
	s      string
	micros int64 // datetime: microseconds since the Unix epoch
	b      []byte
	arr    []Datum
}

// Null returns the absent-value datum.
func Null() Datum { return Datum{kind: KindNull} }

// Int constructs an integer datum.
func Int(v int64) Datum { return Datum{kind: KindInteger, i: v} }

// Decimal constructs a floating-point datum.
func Decimal(v float64) Datum { return Datum{kind: KindDecimal, f: v} }

// String constructs a string datum.
func String(v string) Datum { return Datum{kind: KindString, s: v} }

// Datetime constructs a datetime datum from microseconds since the Unix
// epoch. The same representation is reused for durations (AGE, INTERVAL):
// the value is simply interpreted as an elapsed span rather than an
// absolute instant by the caller.
func Datetime(micros int64) Datum { return Datum{kind: KindDatetime, micros: micros} }

// DatetimeFromTime constructs a datetime datum from a time.Time.
func DatetimeFromTime(t time.Time) Datum { return Datetime(t.UnixMicro()) }

// Binary constructs a binary datum, copying b.
func Binary(b []byte) Datum {
	return Datum{kind: KindBinary, b: append([]byte(nil), b...)}
}

// Array constructs an array datum of the given element kind, copying items.
func Array(elem Kind, items []Datum) Datum {
	cp := make([]Datum, len(items))
	copy(cp, items)
	return Datum{kind: KindArray, elemKind: elem, arr: cp}
}

// StringArray is a convenience constructor for the common case of an array
// of strings (e.g. the BACKEND field).
func StringArray(ss []string) Datum {
	items := make([]Datum, len(ss))
	for i, s := range ss {
		items[i] = String(s)
	}
	return Array(KindString, items)
}

// Kind reports the datum's tag.
func (d Datum) Kind() Kind { return d.kind }

// ElemKind reports the element tag of an array datum.
func (d Datum) ElemKind() Kind { return d.elemKind }

// IsNull reports whether the datum represents an absent value.
func (d Datum) IsNull() bool { return d.kind == KindNull }

// Int returns the integer value; meaningful only when Kind() == KindInteger.
func (d Datum) Int() int64 { return d.i }

// Float returns the decimal value; meaningful only when Kind() == KindDecimal.
func (d Datum) Float() float64 { return d.f }

// Str returns the string value; meaningful only when Kind() == KindString.
func (d Datum) Str() string { return d.s }

// Micros returns the raw microsecond value of a datetime/duration datum.
func (d Datum) Micros() int64 { return d.micros }

// Time interprets a datetime datum as an absolute UTC instant.
func (d Datum) Time() time.Time { return time.UnixMicro(d.micros).UTC() }

// Duration interprets a datetime datum as an elapsed span.
func (d Datum) Duration() time.Duration { return time.Duration(d.micros) * time.Microsecond }

// Bytes returns the binary payload; meaningful only when Kind() == KindBinary.
func (d Datum) Bytes() []byte { return d.b }

// Elements returns the array's members; meaningful only when Kind() == KindArray.
func (d Datum) Elements() []Datum { return d.arr }

// Clone returns a deep copy, safe to mutate independently of d.
func (d Datum) Clone() Datum {
	cp := d
	if d.b != nil {
		cp.b = append([]byte(nil), d.b...)
	}
	if d.arr != nil {
		cp.arr = make([]Datum, len(d.arr))
		for i, e := range d.arr {
			cp.arr[i] = e.Clone()
		}
	}
	return cp
}

func isNumeric(k Kind) bool { return k == KindInteger || k == KindDecimal }

func (d Datum) asFloat() float64 {
	if d.kind == KindInteger {
		return float64(d.i)
	}
	return d.f
}

// Compare orders two datums of the same (or numerically compatible) kind.
// The second return value is false on a type mismatch, in which case the
// relative order is meaningless — callers (the cmp matchers) treat that as
// "not equal" rather than an error.
func (d Datum) Compare(o Datum) (int, bool) {
	switch {
	case d.kind == KindNull || o.kind == KindNull:
		return 0, false
	case isNumeric(d.kind) && isNumeric(o.kind):
		af, bf := d.asFloat(), o.asFloat()
		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case d.kind == KindString && o.kind == KindString:
		return strings.Compare(d.s, o.s), true
	case d.kind == KindDatetime && o.kind == KindDatetime:
		switch {
		case d.micros < o.micros:
			return -1, true
		case d.micros > o.micros:
			return 1, true
		default:
			return 0, true
		}
	case d.kind == KindBinary && o.kind == KindBinary:
		return bytes.Compare(d.b, o.b), true
	default:
		return 0, false
	}
}

// Equal reports whether d and o compare equal under Compare.
func (d Datum) Equal(o Datum) bool {
	c, ok := d.Compare(o)
	return ok && c == 0
}

// Size estimates the datum's in-memory footprint in bytes, for callers that
// want to budget allocations without formatting the value.
func (d Datum) Size() int {
	switch d.kind {
	case KindNull:
		return 0
	case KindInteger, KindDatetime:
		return 8
	case KindDecimal:
		return 8
	case KindString:
		return len(d.s)
	case KindBinary:
		return len(d.b)
	case KindArray:
		n := 0
		for _, e := range d.arr {
			n += e.Size()
		}
		return n
	default:
		return 0
	}
}

// String formats the datum for display (error messages, debug logging, the
// CLI), not for wire/JSON output — see MarshalJSON for that.
func (d Datum) String() string {
	switch d.kind {
	case KindNull:
		return "NULL"
	case KindInteger:
		return strconv.FormatInt(d.i, 10)
	case KindDecimal:
		return strconv.FormatFloat(d.f, 'g', -1, 64)
	case KindString:
		return d.s
	case KindDatetime:
		return d.Time().Format("2006-01-02 15:04:05.000000 -0700")
	case KindBinary:
		return hex.EncodeToString(d.b)
	case KindArray:
		parts := make([]string, len(d.arr))
		for i, e := range d.arr {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return ""
	}
}

// MarshalJSON implements the §6 wire encoding: integer/decimal as bare JSON
// numbers, string as a JSON string, datetime as a quoted formatted
// timestamp, binary as a hex-encoded JSON string, array recursively.
func (d Datum) MarshalJSON() ([]byte, error) {
	switch d.kind {
	case KindNull:
		return []byte("null"), nil
	case KindInteger:
		return []byte(strconv.FormatInt(d.i, 10)), nil
	case KindDecimal:
		return []byte(strconv.FormatFloat(d.f, 'g', -1, 64)), nil
	case KindString:
		return json.Marshal(d.s)
	case KindDatetime:
		return json.Marshal(d.Time().Format("2006-01-02 15:04:05 -0700"))
	case KindBinary:
		return json.Marshal(hex.EncodeToString(d.b))
	case KindArray:
		raw := make([]json.RawMessage, len(d.arr))
		for i, e := range d.arr {
			b, err := e.MarshalJSON()
			if err != nil {
				return nil, err
			}
			raw[i] = b
		}
		return json.Marshal(raw)
	default:
		return []byte("null"), nil
	}
}
