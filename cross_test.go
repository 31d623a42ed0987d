package seqfn_test

import (
	"testing"

	"seqfn"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestCross_TwoByTwoOrder(t *testing.T) {
	got := seqfn.Cross[string](seqfn.Of("a", "b"), seqfn.Of("x", "y"))

	want := [][]string{
		{"a", "x"},
		{"a", "y"},
		{"b", "x"},
		{"b", "y"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestCross_LastInputVariesFastest(t *testing.T) {
	got := seqfn.Cross[int](seqfn.Of(0, 1), seqfn.Of(0, 1), seqfn.Of(0, 1))

	require.Len(t, got, 8)
	// odometer order: rows read as binary counting
	for i, tuple := range got {
		n := tuple[0]*4 + tuple[1]*2 + tuple[2]
		require.Equal(t, i, n)
	}
}

func TestCross_EmptyInputYieldsEmptyProduct(t *testing.T) {
	got := seqfn.Cross[int](seqfn.Of(1, 2), seqfn.Of[int]())

	require.Empty(t, got)
}

func TestCross_ZeroInputsYieldOneEmptyTuple(t *testing.T) {
	got := seqfn.Cross[int]()

	require.Len(t, got, 1)
	require.Empty(t, got[0])
}

func TestCross_DuplicatesPreserved(t *testing.T) {
	got := seqfn.Cross[int](seqfn.Of(1, 1), seqfn.Of(2))

	want := [][]int{{1, 2}, {1, 2}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("product mismatch (-want +got):\n%s", diff)
	}
}

func TestCross2_HeterogeneousPairs(t *testing.T) {
	got := seqfn.Cross2[int, string](seqfn.Of(1, 2), seqfn.Of("x", "y"))

	want := []seqfn.Pair[int, string]{
		{First: 1, Second: "x"},
		{First: 1, Second: "y"},
		{First: 2, Second: "x"},
		{First: 2, Second: "y"},
	}
	require.Equal(t, want, got)
}

func TestCrossToTable(t *testing.T) {
	tbl, err := seqfn.CrossToTable(
		seqfn.Named[string]{Name: "size", Seq: seqfn.Of("s", "m")},
		seqfn.Named[string]{Name: "color", Seq: seqfn.Of("red", "blue")},
	)

	require.NoError(t, err)
	require.Equal(t, []string{"size", "color"}, tbl.Columns())
	require.Equal(t, 4, tbl.Len())
	require.Equal(t, []string{"s", "blue"}, tbl.Row(2))

	want := [][]string{
		{"s", "red"},
		{"s", "blue"},
		{"m", "red"},
		{"m", "blue"},
	}
	if diff := cmp.Diff(want, tbl.Rows()); diff != "" {
		t.Fatalf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCrossToTable_Column(t *testing.T) {
	tbl, err := seqfn.CrossToTable(
		seqfn.Named[int]{Name: "a", Seq: seqfn.Of(1, 2)},
		seqfn.Named[int]{Name: "b", Seq: seqfn.Of(7, 8)},
	)
	require.NoError(t, err)

	col, err := tbl.Column("a")
	require.NoError(t, err)
	require.Equal(t, []int{1, 1, 2, 2}, col.Slice())

	_, err = tbl.Column("nope")
	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
}

func TestCrossToTable_RejectsUnnamedInputs(t *testing.T) {
	_, err := seqfn.CrossToTable(
		seqfn.Named[int]{Name: "", Seq: seqfn.Of(1)},
	)
	require.ErrorIs(t, err, seqfn.ErrUnnamedInput)

	_, err = seqfn.CrossToTable(
		seqfn.Named[int]{Name: "a", Seq: seqfn.Of(1)},
		seqfn.Named[int]{Name: "a", Seq: seqfn.Of(2)},
	)
	require.ErrorIs(t, err, seqfn.ErrUnnamedInput)
	require.ErrorContains(t, err, "duplicate")
}

func TestTable_RowIsACopy(t *testing.T) {
	tbl, err := seqfn.CrossToTable(
		seqfn.Named[int]{Name: "a", Seq: seqfn.Of(1, 2)},
	)
	require.NoError(t, err)

	row := tbl.Row(1)
	row[0] = 99

	require.Equal(t, []int{1}, tbl.Row(1))
}
