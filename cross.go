package seqfn

import (
	"fmt"
)

// Cross returns every tuple formed by choosing one element from each input
// sequence, in odometer order: the last input's index varies fastest. Each
// tuple is a fresh slice with one element per input, in input order.
//
// Policy for the degenerate cases: any empty input makes the whole product
// empty (no error); zero inputs yield exactly one empty tuple, the nullary
// product identity. Duplicate values in an input produce duplicate tuples.
func Cross[T any](seqs ...Seq[T]) [][]T {
	total := 1
	for _, s := range seqs {
		total *= s.Len()
	}
	if total == 0 {
		return nil
	}

	out := make([][]T, 0, total)
	odometer := make([]int, len(seqs)) // 0-based counters
	for {
		tuple := make([]T, len(seqs))
		for k, s := range seqs {
			tuple[k] = s.At(odometer[k] + 1)
		}
		out = append(out, tuple)

		k := len(seqs) - 1
		for k >= 0 {
			odometer[k]++
			if odometer[k] < seqs[k].Len() {
				break
			}
			odometer[k] = 0
			k--
		}
		if k < 0 {
			return out
		}
	}
}

// Cross2 is the two-input Cartesian product with heterogeneous element
// types, returned as Pairs in odometer order (b varies fastest).
func Cross2[A, B any](a Seq[A], b Seq[B]) []Pair[A, B] {
	out := make([]Pair[A, B], 0, a.Len()*b.Len())
	for i := 1; i <= a.Len(); i++ {
		for j := 1; j <= b.Len(); j++ {
			out = append(out, Pair[A, B]{First: a.At(i), Second: b.At(j)})
		}
	}
	return out
}

// Named attaches a column name to a sequence for CrossToTable.
type Named[T any] struct {
	Name string
	Seq  Seq[T]
}

// Table is a row-oriented tabular container: one column per CrossToTable
// input, one row per tuple of the product.
type Table[T any] struct {
	cols []string
	rows [][]T
}

// CrossToTable computes the same product as Cross and projects it into a
// Table with one column per input. Every input must carry a non-empty,
// unique name; otherwise the call fails with ErrUnnamedInput.
func CrossToTable[T any](inputs ...Named[T]) (*Table[T], error) {
	seen := make(map[string]bool, len(inputs))
	cols := make([]string, len(inputs))
	seqs := make([]Seq[T], len(inputs))
	for k, in := range inputs {
		if in.Name == "" {
			return nil, fmt.Errorf("%w: input %d has no name", ErrUnnamedInput, k+1)
		}
		if seen[in.Name] {
			return nil, fmt.Errorf("%w: duplicate name %q", ErrUnnamedInput, in.Name)
		}
		seen[in.Name] = true
		cols[k] = in.Name
		seqs[k] = in.Seq
	}
	return &Table[T]{cols: cols, rows: Cross(seqs...)}, nil
}

// Columns returns the column names in input order as a fresh slice.
func (t *Table[T]) Columns() []string {
	out := make([]string, len(t.cols))
	copy(out, t.cols)
	return out
}

// Len returns the number of rows.
func (t *Table[T]) Len() int {
	return len(t.rows)
}

// Row returns a fresh copy of the row at 1-based position i.
func (t *Table[T]) Row(i int) []T {
	if i < 1 || i > len(t.rows) {
		panic(fmt.Sprintf("seqfn: Table.Row(%d) out of range [1, %d]", i, len(t.rows)))
	}
	out := make([]T, len(t.rows[i-1]))
	copy(out, t.rows[i-1])
	return out
}

// Rows returns all rows. The outer slice is fresh; rows are shared with the
// table, so callers must not mutate them.
func (t *Table[T]) Rows() [][]T {
	out := make([][]T, len(t.rows))
	copy(out, t.rows)
	return out
}

// Column returns the named column as a List, in row order. An unknown name
// fails with ErrPathNotFound.
func (t *Table[T]) Column(name string) (List[T], error) {
	for k, c := range t.cols {
		if c == name {
			out := make([]T, len(t.rows))
			for i, row := range t.rows {
				out[i] = row[k]
			}
			return FromSlice(out), nil
		}
	}
	return List[T]{}, fmt.Errorf("%w: no column %q", ErrPathNotFound, name)
}
