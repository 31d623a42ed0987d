package seqfn

import (
	"fmt"
	"iter"

	"seqfn/internal/iterx"
)

// Seq is the read-only view every combinator in this package is written
// against. Positions are 1-based: At(1) is the first element and At(Len())
// the last. The same convention applies to every index this package accepts
// or returns (IMap, DetectIndex, ModifyAt, Pluck list steps, Table.Row).
//
// Implementations must not change length while a combinator call is in
// flight; combinators only read their inputs and return freshly built
// containers.
type Seq[T any] interface {
	// Len returns the number of elements.
	Len() int

	// At returns the element at 1-based position i. Implementations panic
	// when i is outside [1, Len]; combinators that take caller-supplied
	// positions bounds-check first and return ErrIndexOutOfRange instead.
	At(i int) T
}

// List is a slice-backed Seq. The zero value is an empty list.
type List[T any] struct {
	elems []T
}

// Of builds a List from its arguments.
func Of[T any](vals ...T) List[T] {
	return List[T]{elems: vals}
}

// FromSlice wraps a slice as a List without copying. The caller must not
// mutate the slice afterwards.
func FromSlice[T any](in []T) List[T] {
	return List[T]{elems: in}
}

// Len returns the number of elements.
func (l List[T]) Len() int {
	return len(l.elems)
}

// At returns the element at 1-based position i.
func (l List[T]) At(i int) T {
	if i < 1 || i > len(l.elems) {
		panic(fmt.Sprintf("seqfn: List.At(%d) out of range [1, %d]", i, len(l.elems)))
	}
	return l.elems[i-1]
}

// Slice returns a fresh copy of the elements.
func (l List[T]) Slice() []T {
	out := make([]T, len(l.elems))
	copy(out, l.elems)
	return out
}

// Values iterates the elements in order.
func (l List[T]) Values() iter.Seq[T] {
	return iterx.FromSlice(l.elems)
}

// Dict is an insertion-ordered mapping from string keys to values. It
// implements Seq over its values, so every combinator accepts it directly;
// iteration and indexing follow insertion order, and Set on an existing key
// updates the value in place without moving it.
//
// The zero value is not usable; construct with NewDict.
type Dict[T any] struct {
	keys  []string
	vals  []T
	index map[string]int
}

// NewDict returns an empty Dict.
func NewDict[T any]() *Dict[T] {
	return &Dict[T]{index: make(map[string]int)}
}

// Set inserts key with value v, or replaces the value if key is already
// present. Insertion order is preserved on replace.
func (d *Dict[T]) Set(key string, v T) {
	if i, ok := d.index[key]; ok {
		d.vals[i] = v
		return
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, v)
}

// Get returns the value for key and whether it was present.
func (d *Dict[T]) Get(key string) (T, bool) {
	if i, ok := d.index[key]; ok {
		return d.vals[i], true
	}
	var zero T
	return zero, false
}

// Len returns the number of entries.
func (d *Dict[T]) Len() int {
	return len(d.keys)
}

// At returns the value at 1-based insertion position i.
func (d *Dict[T]) At(i int) T {
	if i < 1 || i > len(d.vals) {
		panic(fmt.Sprintf("seqfn: Dict.At(%d) out of range [1, %d]", i, len(d.vals)))
	}
	return d.vals[i-1]
}

// KeyAt returns the key at 1-based insertion position i.
func (d *Dict[T]) KeyAt(i int) string {
	if i < 1 || i > len(d.keys) {
		panic(fmt.Sprintf("seqfn: Dict.KeyAt(%d) out of range [1, %d]", i, len(d.keys)))
	}
	return d.keys[i-1]
}

// Keys returns the keys in insertion order as a fresh slice.
func (d *Dict[T]) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values iterates the values in insertion order.
func (d *Dict[T]) Values() iter.Seq[T] {
	return iterx.FromSlice(d.vals)
}

// All iterates key/value entries in insertion order.
func (d *Dict[T]) All() iter.Seq2[string, T] {
	return iterx.FromPairs(d.keys, d.vals)
}

// Pair holds two values of independent types. It is used by [Cross2] and is
// handy for ad hoc tuples in caller code.
type Pair[A, B any] struct {
	First  A
	Second B
}
