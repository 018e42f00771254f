// Package ordered provides a case-insensitive, name-ordered container with
// logarithmic lookup, built on google/btree. It backs every container in
// pkg/store (the host set, and each host/service/metric's child sets):
// spec.md asks only for "deterministic ordering" and "logarithmic lookup",
// leaving the concrete structure to the implementation.
package ordered

import (
	"strings"

	"github.com/google/btree"
)

const degree = 32

type entry[T any] struct {
	key string // lower-cased name, used for both ordering and lookup
	val T
}

func (e entry[T]) Less(than btree.Item) bool {
	return e.key < than.(entry[T]).key
}

// Map is an ordered, case-insensitive map from name to value T.
type Map[T any] struct {
	tree *btree.BTree
}

// NewMap constructs an empty Map.
func NewMap[T any]() *Map[T] {
	return &Map[T]{tree: btree.New(degree)}
}

func normalize(name string) string { return strings.ToLower(name) }

// Get looks up name case-insensitively.
func (m *Map[T]) Get(name string) (T, bool) {
	item := m.tree.Get(entry[T]{key: normalize(name)})
	if item == nil {
		var zero T
		return zero, false
	}
	return item.(entry[T]).val, true
}

// Set inserts or replaces the value stored under name.
func (m *Map[T]) Set(name string, val T) {
	m.tree.ReplaceOrInsert(entry[T]{key: normalize(name), val: val})
}

// Delete removes name, if present.
func (m *Map[T]) Delete(name string) {
	m.tree.Delete(entry[T]{key: normalize(name)})
}

// Len reports the number of entries.
func (m *Map[T]) Len() int { return m.tree.Len() }

// Ascend visits every entry in case-insensitive name order, stopping early
// if fn returns false.
func (m *Map[T]) Ascend(fn func(val T) bool) {
	m.tree.Ascend(func(i btree.Item) bool {
		return fn(i.(entry[T]).val)
	})
}

// Values returns every value in name order, as a plain slice.
func (m *Map[T]) Values() []T {
	out := make([]T, 0, m.tree.Len())
	m.Ascend(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
