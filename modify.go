package seqfn

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Modify is Map restricted to transformations that preserve the element
// type: fn must return the same type it receives. For statically typed
// sequences the signature enforces this at compile time; ModifyValues is
// the dynamic counterpart that checks it at run time.
func Modify[T any](s Seq[T], fn func(T) T) List[T] {
	if fn == nil {
		panic("seqfn: Modify requires a non-nil fn")
	}
	return Map(s, MapFunc[T, T](fn))
}

// ModifyValues applies fn to each dynamic element, requiring every result
// to have exactly the same cty type as the element it replaces. A result of
// a different type fails the whole call with ErrTypeMismatch carrying the
// 1-based position; no partial output is returned.
func ModifyValues(s Seq[cty.Value], fn ValueFunc) (List[cty.Value], error) {
	if fn == nil {
		panic("seqfn: ModifyValues requires a non-nil fn")
	}
	out := make([]cty.Value, s.Len())
	for i := 1; i <= s.Len(); i++ {
		in := s.At(i)
		res := fn(in)
		if !res.Type().Equals(in.Type()) {
			return List[cty.Value]{}, fmt.Errorf("%w: ModifyValues position %d: got %s, want %s",
				ErrTypeMismatch, i, res.Type().FriendlyName(), in.Type().FriendlyName())
		}
		out[i-1] = res
	}
	return FromSlice(out), nil
}

// ModifyIf applies fn only to the elements satisfying pred; the rest pass
// through unchanged, keeping their positions and original values.
func ModifyIf[T any](s Seq[T], pred Predicate[T], fn func(T) T) List[T] {
	if pred == nil {
		panic("seqfn: ModifyIf requires a non-nil predicate")
	}
	if fn == nil {
		panic("seqfn: ModifyIf requires a non-nil fn")
	}
	out := make([]T, s.Len())
	for i := 1; i <= s.Len(); i++ {
		v := s.At(i)
		if pred(v) {
			v = fn(v)
		}
		out[i-1] = v
	}
	return FromSlice(out)
}

// ModifyAt applies fn only at the given 1-based positions. Positions are
// validated before any work happens: if any is outside [1, Len] the call
// fails with ErrIndexOutOfRange and no output is produced. A position listed
// more than once has fn applied once per occurrence, in listed order.
func ModifyAt[T any](s Seq[T], positions []int, fn func(T) T) (List[T], error) {
	if fn == nil {
		panic("seqfn: ModifyAt requires a non-nil fn")
	}
	for _, p := range positions {
		if p < 1 || p > s.Len() {
			return List[T]{}, fmt.Errorf("%w: ModifyAt position %d outside [1, %d]", ErrIndexOutOfRange, p, s.Len())
		}
	}
	out := make([]T, s.Len())
	for i := 1; i <= s.Len(); i++ {
		out[i-1] = s.At(i)
	}
	for _, p := range positions {
		out[p-1] = fn(out[p-1])
	}
	return FromSlice(out), nil
}
