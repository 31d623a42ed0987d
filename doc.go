/*
Package seqfn provides eager, order-preserving combinators over fixed-length
sequences and ordered keyed containers, together with a small pipelining
layer for writing computations as left-to-right chains.

Everything is written against the Seq view: an ordered, 1-based-indexable
collection. List wraps a slice, Dict is an insertion-ordered string-keyed
container, and both satisfy Seq, so every combinator accepts either.
Combinators never mutate their inputs; each call returns a freshly built
container. Traversal order is part of the contract — elements are visited
in index order, folds run strictly forward or strictly backward — so
nothing here is parallelized.

The combinator families:

  - transformation: Map, IMap, Map2, PMap, and the typed variants MapBool,
    MapInt, MapFloat, MapString, which coerce every result of a dynamic
    (cty.Value) transformation to one declared output type and fail with
    ErrTypeMismatch when any element cannot comply.
  - selection and search: Keep, Discard, Every, Some, Has, HasFunc, Detect,
    DetectIndex, and Pluck for drilling into nested dynamic values.
  - selective replacement: Modify, ModifyValues, ModifyIf, ModifyAt.
  - Cartesian products: Cross, Cross2, CrossToTable.
  - reduction: Reduce, ReduceRight, Fold, FoldRight, Accumulate,
    AccumulateFrom, all of which honor early termination through the
    Continue/Stop Step values returned by the combining function.

Failures are ordinary error values wrapping the package's sentinel kinds
(ErrTypeMismatch, ErrLengthMismatch, ErrIndexOutOfRange, ErrPathNotFound,
ErrEmptyInput, ErrUnnamedInput); match them with errors.Is. Passing a nil
function or predicate is a programmer error and panics.

Example of a pipeline over a small score sequence:

	scores := seqfn.Of(4, 8, 15, 16, 23, 42)

	even := seqfn.Keep(scores, func(v int) bool { return v%2 == 0 })
	squared := seqfn.Map(even, func(v int) int { return v * v })
	total := seqfn.Fold(squared, 0, func(acc, v int) seqfn.Step[int] {
		return seqfn.Continue(acc + v)
	})

Scalar computations chain the same way through Pipe and the placeholder
adapters, which decide where the piped value lands in a multi-argument call:

	clamp := func(v, hi int) int { ... }

	// clamp(5*2, 8): the piped value is clamp's first argument.
	out := seqfn.Pipe2(5,
		func(v int) int { return v * 2 },
		seqfn.FirstArg(clamp, 8),
	)

Indexing convention: every position this package accepts or returns is
1-based — At, IMap, DetectIndex, ModifyAt, Pluck list steps, Table.Row.
*/
package seqfn
