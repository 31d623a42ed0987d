package seqfn

// Predicate reports whether an element should be selected. Used by Keep,
// Discard, Every, Some, Detect and ModifyIf.
type Predicate[T any] func(item T) bool

// Keep returns a new List holding exactly the elements for which pred is
// true, in their original relative order.
func Keep[T any](s Seq[T], pred Predicate[T]) List[T] {
	if pred == nil {
		panic("seqfn: Keep requires a non-nil predicate")
	}
	out := make([]T, 0, s.Len())
	for i := 1; i <= s.Len(); i++ {
		if v := s.At(i); pred(v) {
			out = append(out, v)
		}
	}
	return FromSlice(out)
}

// Discard is the complement of Keep: it returns the elements for which pred
// is false. Keep and Discard with the same predicate partition the input
// exactly.
func Discard[T any](s Seq[T], pred Predicate[T]) List[T] {
	if pred == nil {
		panic("seqfn: Discard requires a non-nil predicate")
	}
	return Keep(s, func(v T) bool { return !pred(v) })
}

// Every reports whether pred holds for all elements. It stops scanning at
// the first falsifying element. Every is vacuously true on an empty input.
func Every[T any](s Seq[T], pred Predicate[T]) bool {
	if pred == nil {
		panic("seqfn: Every requires a non-nil predicate")
	}
	for i := 1; i <= s.Len(); i++ {
		if !pred(s.At(i)) {
			return false
		}
	}
	return true
}

// Some reports whether pred holds for at least one element. It stops
// scanning at the first satisfying element.
func Some[T any](s Seq[T], pred Predicate[T]) bool {
	if pred == nil {
		panic("seqfn: Some requires a non-nil predicate")
	}
	for i := 1; i <= s.Len(); i++ {
		if pred(s.At(i)) {
			return true
		}
	}
	return false
}

// Has reports whether v occurs in s, using exact == equality on T. There is
// no cross-type numeric coercion: an int sequence can only be probed with an
// int, so the classic int-vs-float lookup pitfall cannot arise here. Callers
// who want a looser policy (tolerant float comparison, cty.Value.RawEquals,
// case-insensitive strings) must spell it out with HasFunc.
func Has[T comparable](s Seq[T], v T) bool {
	for i := 1; i <= s.Len(); i++ {
		if s.At(i) == v {
			return true
		}
	}
	return false
}

// HasFunc reports whether any element of s is equal to v under the supplied
// equality function.
func HasFunc[T any](s Seq[T], v T, eq func(a, b T) bool) bool {
	if eq == nil {
		panic("seqfn: HasFunc requires a non-nil equality func")
	}
	for i := 1; i <= s.Len(); i++ {
		if eq(s.At(i), v) {
			return true
		}
	}
	return false
}

// Detect returns the first element satisfying pred. The boolean reports
// whether such an element exists; when it is false the returned value is
// T's zero value.
func Detect[T any](s Seq[T], pred Predicate[T]) (T, bool) {
	if pred == nil {
		panic("seqfn: Detect requires a non-nil predicate")
	}
	for i := 1; i <= s.Len(); i++ {
		if v := s.At(i); pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// DetectIndex returns the 1-based position of the first element satisfying
// pred, or 0 if none does.
func DetectIndex[T any](s Seq[T], pred Predicate[T]) int {
	if pred == nil {
		panic("seqfn: DetectIndex requires a non-nil predicate")
	}
	for i := 1; i <= s.Len(); i++ {
		if pred(s.At(i)) {
			return i
		}
	}
	return 0
}
