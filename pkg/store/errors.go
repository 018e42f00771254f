package store

import "errors"

var (
	// ErrInvalidArgument is returned when a required name/key argument is
	// empty or otherwise malformed.
	ErrInvalidArgument = errors.New("store: invalid argument")

	// ErrMissingParent is returned when an update names a host, service, or
	// metric that does not yet exist.
	ErrMissingParent = errors.New("store: missing parent object")

	// ErrEmptyStore is returned by Iterate when the store holds no hosts.
	ErrEmptyStore = errors.New("store: empty")
)

// Result reports whether an update call actually changed the store.
type Result int

const (
	// ResultStored means the call created an object or mutated an existing
	// one (timestamp, interval, backend list, value, or descriptor).
	ResultStored Result = 0
	// ResultUnchanged means the call was accepted but nothing about the
	// object differs from before — a stale or redundant update.
	ResultUnchanged Result = 1
)

func (r Result) String() string {
	if r == ResultStored {
		return "stored"
	}
	return "unchanged"
}
