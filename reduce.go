package seqfn

import "fmt"

// Step carries a fold's accumulator between elements, together with the
// decision to keep going or stop. Combining functions return Continue to
// proceed with an updated accumulator and Stop to end the fold immediately
// with a final value; remaining input is not visited after a Stop.
type Step[A any] struct {
	value A
	done  bool
}

// Continue carries v to the next element of the fold.
func Continue[A any](v A) Step[A] {
	return Step[A]{value: v}
}

// Stop ends the fold immediately with v as its final value.
func Stop[A any](v A) Step[A] {
	return Step[A]{value: v, done: true}
}

// Value returns the accumulator carried by the step.
func (s Step[A]) Value() A {
	return s.value
}

// Done reports whether the step ends the fold.
func (s Step[A]) Done() bool {
	return s.done
}

// Reduce folds s left to right, seeded with the first element: for a
// 4-element input the result is
//
//	combine(combine(combine(a1, a2), a3), a4)
//
// unless some step returns Stop, whose value becomes the result regardless
// of remaining input. Fails with ErrEmptyInput on an empty sequence; use
// Fold to supply an initial value instead.
func Reduce[T any](s Seq[T], combine func(acc, item T) Step[T]) (T, error) {
	if combine == nil {
		panic("seqfn: Reduce requires a non-nil combine")
	}
	if s.Len() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: Reduce", ErrEmptyInput)
	}
	acc := s.At(1)
	for i := 2; i <= s.Len(); i++ {
		step := combine(acc, s.At(i))
		acc = step.Value()
		if step.Done() {
			break
		}
	}
	return acc, nil
}

// ReduceRight folds s right to left, seeded with the last element. The
// accumulator is combine's second argument, so for a 4-element input the
// result is
//
//	combine(a1, combine(a2, combine(a3, a4)))
//
// Stop ends the fold as in Reduce. Fails with ErrEmptyInput on an empty
// sequence; use FoldRight to supply an initial value instead.
func ReduceRight[T any](s Seq[T], combine func(item, acc T) Step[T]) (T, error) {
	if combine == nil {
		panic("seqfn: ReduceRight requires a non-nil combine")
	}
	if s.Len() == 0 {
		var zero T
		return zero, fmt.Errorf("%w: ReduceRight", ErrEmptyInput)
	}
	acc := s.At(s.Len())
	for i := s.Len() - 1; i >= 1; i-- {
		step := combine(s.At(i), acc)
		acc = step.Value()
		if step.Done() {
			break
		}
	}
	return acc, nil
}

// Fold is Reduce with an explicit initial accumulator, which also frees the
// accumulator's type from the element type. It never fails: an empty input
// yields init.
func Fold[A, T any](s Seq[T], init A, combine func(acc A, item T) Step[A]) A {
	if combine == nil {
		panic("seqfn: Fold requires a non-nil combine")
	}
	acc := init
	for i := 1; i <= s.Len(); i++ {
		step := combine(acc, s.At(i))
		acc = step.Value()
		if step.Done() {
			break
		}
	}
	return acc
}

// FoldRight is Fold traversing right to left; as in ReduceRight the element
// is combine's first argument and the accumulator its second.
func FoldRight[A, T any](s Seq[T], init A, combine func(item T, acc A) Step[A]) A {
	if combine == nil {
		panic("seqfn: FoldRight requires a non-nil combine")
	}
	acc := init
	for i := s.Len(); i >= 1; i-- {
		step := combine(s.At(i), acc)
		acc = step.Value()
		if step.Done() {
			break
		}
	}
	return acc
}

// Accumulate is Reduce keeping history: it returns every accumulator value
// observed, starting with the seed element, in traversal order. A Stop
// records its value and halts, so the output length is the number of steps
// actually taken, not the input length. Fails with ErrEmptyInput on an
// empty sequence.
func Accumulate[T any](s Seq[T], combine func(acc, item T) Step[T]) (List[T], error) {
	if combine == nil {
		panic("seqfn: Accumulate requires a non-nil combine")
	}
	if s.Len() == 0 {
		return List[T]{}, fmt.Errorf("%w: Accumulate", ErrEmptyInput)
	}
	acc := s.At(1)
	out := make([]T, 0, s.Len())
	out = append(out, acc)
	for i := 2; i <= s.Len(); i++ {
		step := combine(acc, s.At(i))
		acc = step.Value()
		out = append(out, acc)
		if step.Done() {
			break
		}
	}
	return FromSlice(out), nil
}

// AccumulateFrom is Accumulate with an explicit initial accumulator, which
// is also the first element of the output.
func AccumulateFrom[A, T any](s Seq[T], init A, combine func(acc A, item T) Step[A]) List[A] {
	if combine == nil {
		panic("seqfn: AccumulateFrom requires a non-nil combine")
	}
	acc := init
	out := make([]A, 0, s.Len()+1)
	out = append(out, acc)
	for i := 1; i <= s.Len(); i++ {
		step := combine(acc, s.At(i))
		acc = step.Value()
		out = append(out, acc)
		if step.Done() {
			break
		}
	}
	return FromSlice(out)
}
