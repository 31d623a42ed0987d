package seqfn_test

import (
	"testing"

	"seqfn"

	"github.com/stretchr/testify/require"
	"github.com/zclconf/go-cty/cty"
)

func roster() cty.Value {
	return cty.ObjectVal(map[string]cty.Value{
		"team": cty.ListVal([]cty.Value{
			cty.ObjectVal(map[string]cty.Value{
				"name":  cty.StringVal("ada"),
				"langs": cty.ListVal([]cty.Value{cty.StringVal("go"), cty.StringVal("r")}),
			}),
			cty.ObjectVal(map[string]cty.Value{
				"name":  cty.StringVal("grace"),
				"langs": cty.ListVal([]cty.Value{cty.StringVal("cobol")}),
			}),
		}),
		"tags": cty.MapVal(map[string]cty.Value{
			"tier": cty.StringVal("core"),
		}),
	})
}

func TestPluck_NestedObjectAndList(t *testing.T) {
	got, err := seqfn.Pluck(roster(), "team", 1, "langs", 2)

	require.NoError(t, err)
	require.Equal(t, cty.StringVal("r"), got)
}

func TestPluck_MapKey(t *testing.T) {
	got, err := seqfn.Pluck(roster(), "tags", "tier")

	require.NoError(t, err)
	require.Equal(t, cty.StringVal("core"), got)
}

func TestPluck_NoStepsReturnsValue(t *testing.T) {
	got, err := seqfn.Pluck(cty.NumberIntVal(7))

	require.NoError(t, err)
	require.Equal(t, cty.NumberIntVal(7), got)
}

func TestPluck_MissingAttribute(t *testing.T) {
	_, err := seqfn.Pluck(roster(), "team", 1, "salary")

	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
	require.ErrorContains(t, err, `"salary"`)
}

func TestPluck_MissingMapKey(t *testing.T) {
	_, err := seqfn.Pluck(roster(), "tags", "region")

	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
}

func TestPluck_ListIndexIsOneBased(t *testing.T) {
	got, err := seqfn.Pluck(roster(), "team", 2, "name")
	require.NoError(t, err)
	require.Equal(t, cty.StringVal("grace"), got)

	_, err = seqfn.Pluck(roster(), "team", 0)
	require.ErrorIs(t, err, seqfn.ErrPathNotFound)

	_, err = seqfn.Pluck(roster(), "team", 3)
	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
}

func TestPluck_WrongStepKind(t *testing.T) {
	// string key into a list
	_, err := seqfn.Pluck(roster(), "team", "name")
	require.ErrorIs(t, err, seqfn.ErrPathNotFound)

	// index into a scalar
	_, err = seqfn.Pluck(cty.StringVal("x"), 1)
	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
}

func TestPluck_NullValue(t *testing.T) {
	v := cty.ObjectVal(map[string]cty.Value{
		"inner": cty.NullVal(cty.List(cty.String)),
	})

	_, err := seqfn.Pluck(v, "inner", 1)

	require.ErrorIs(t, err, seqfn.ErrPathNotFound)
	require.ErrorContains(t, err, "null")
}

func TestPluck_BadStepTypePanics(t *testing.T) {
	require.Panics(t, func() {
		_, _ = seqfn.Pluck(roster(), 1.5)
	})
}
