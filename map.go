package seqfn

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

type (

	// MapFunc is a pure mapping function used by Map that transforms a value
	// of type In into a value of type Out.
	MapFunc[In, Out any] func(in In) Out

	// IndexedMapFunc is a mapping function that also receives the element's
	// 1-based position. Used by IMap.
	IndexedMapFunc[In, Out any] func(in In, i int) Out

	// ValueFunc transforms one dynamic value into another. Used by the typed
	// map variants and by ModifyValues.
	ValueFunc func(in cty.Value) cty.Value
)

// Map applies fn to each element in index order and returns a new List of
// the results. The output has the same length as the input; fn's result
// type is unconstrained.
func Map[In, Out any](s Seq[In], fn MapFunc[In, Out]) List[Out] {
	if fn == nil {
		panic("seqfn: Map requires a non-nil fn")
	}
	out := make([]Out, s.Len())
	for i := 1; i <= s.Len(); i++ {
		out[i-1] = fn(s.At(i))
	}
	return FromSlice(out)
}

// IMap is Map with the element's 1-based position passed alongside each
// element.
func IMap[In, Out any](s Seq[In], fn IndexedMapFunc[In, Out]) List[Out] {
	if fn == nil {
		panic("seqfn: IMap requires a non-nil fn")
	}
	out := make([]Out, s.Len())
	for i := 1; i <= s.Len(); i++ {
		out[i-1] = fn(s.At(i), i)
	}
	return FromSlice(out)
}

// Map2 applies fn element-wise over two sequences of equal length. Fails
// with ErrLengthMismatch otherwise.
func Map2[A, B, Out any](a Seq[A], b Seq[B], fn func(A, B) Out) (List[Out], error) {
	if fn == nil {
		panic("seqfn: Map2 requires a non-nil fn")
	}
	if a.Len() != b.Len() {
		return List[Out]{}, fmt.Errorf("%w: Map2 inputs have lengths %d and %d", ErrLengthMismatch, a.Len(), b.Len())
	}
	out := make([]Out, a.Len())
	for i := 1; i <= a.Len(); i++ {
		out[i-1] = fn(a.At(i), b.At(i))
	}
	return FromSlice(out), nil
}

// PMap applies fn element-wise over any number of equal-length sequences:
// at each position, fn receives one element drawn from each input, in input
// order. Fails with ErrLengthMismatch if the inputs differ in length. Zero
// inputs yield an empty result.
func PMap[In, Out any](seqs []Seq[In], fn func([]In) Out) (List[Out], error) {
	if fn == nil {
		panic("seqfn: PMap requires a non-nil fn")
	}
	if len(seqs) == 0 {
		return List[Out]{}, nil
	}
	n := seqs[0].Len()
	for k, s := range seqs[1:] {
		if s.Len() != n {
			return List[Out]{}, fmt.Errorf("%w: PMap input %d has length %d, want %d", ErrLengthMismatch, k+2, s.Len(), n)
		}
	}
	out := make([]Out, n)
	for i := 1; i <= n; i++ {
		// fresh args slice per call so fn may retain it
		args := make([]In, len(seqs))
		for k, s := range seqs {
			args[k] = s.At(i)
		}
		out[i-1] = fn(args)
	}
	return FromSlice(out), nil
}

// MapBool is Map over dynamic values with the output type fixed to bool.
// Each result must convert to a non-null boolean or the whole call fails
// with ErrTypeMismatch; no partial output is returned.
func MapBool(s Seq[cty.Value], fn ValueFunc) (List[bool], error) {
	return mapTyped[bool](s, fn, cty.Bool, "MapBool")
}

// MapInt is Map over dynamic values with the output type fixed to int64.
// Results must be whole numbers representable in an int64; anything else
// fails with ErrTypeMismatch.
func MapInt(s Seq[cty.Value], fn ValueFunc) (List[int64], error) {
	return mapTyped[int64](s, fn, cty.Number, "MapInt")
}

// MapFloat is Map over dynamic values with the output type fixed to float64.
func MapFloat(s Seq[cty.Value], fn ValueFunc) (List[float64], error) {
	return mapTyped[float64](s, fn, cty.Number, "MapFloat")
}

// MapString is Map over dynamic values with the output type fixed to string.
func MapString(s Seq[cty.Value], fn ValueFunc) (List[string], error) {
	return mapTyped[string](s, fn, cty.String, "MapString")
}

// mapTyped traverses like Map but coerces every result to the declared cty
// type and then to the Go representation G. A result that is a collection
// (more than one value per element), a null, or simply inconvertible fails
// the call with ErrTypeMismatch carrying the 1-based position.
func mapTyped[G any](s Seq[cty.Value], fn ValueFunc, want cty.Type, op string) (List[G], error) {
	if fn == nil {
		panic("seqfn: " + op + " requires a non-nil fn")
	}
	out := make([]G, s.Len())
	for i := 1; i <= s.Len(); i++ {
		res := fn(s.At(i))
		conv, err := convert.Convert(res, want)
		if err != nil {
			return List[G]{}, fmt.Errorf("%w: %s position %d: %v", ErrTypeMismatch, op, i, err)
		}
		if conv.IsNull() {
			return List[G]{}, fmt.Errorf("%w: %s position %d: result is null", ErrTypeMismatch, op, i)
		}
		if err := gocty.FromCtyValue(conv, &out[i-1]); err != nil {
			return List[G]{}, fmt.Errorf("%w: %s position %d: %v", ErrTypeMismatch, op, i, err)
		}
	}
	return FromSlice(out), nil
}
