package seqfn

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Pluck drills into a nested dynamic value one step at a time. Each step is
// either a string (an object attribute or map key) or an int (a 1-based
// list/tuple position). The value reached after the final step is returned.
//
// Any step that does not resolve — a missing attribute or key, a position
// outside the collection, a step applied to a null or to a value of the
// wrong kind — fails with ErrPathNotFound naming the step. A step that is
// neither a string nor an int is a programmer error and panics.
func Pluck(v cty.Value, path ...any) (cty.Value, error) {
	cur := v
	for n, step := range path {
		if cur.IsNull() {
			return cty.NilVal, fmt.Errorf("%w: step %d: value is null", ErrPathNotFound, n+1)
		}
		switch key := step.(type) {
		case string:
			next, err := pluckKey(cur, key, n+1)
			if err != nil {
				return cty.NilVal, err
			}
			cur = next
		case int:
			next, err := pluckIndex(cur, key, n+1)
			if err != nil {
				return cty.NilVal, err
			}
			cur = next
		default:
			panic(fmt.Sprintf("seqfn: Pluck step %d must be string or int, got %T", n+1, step))
		}
	}
	return cur, nil
}

func pluckKey(v cty.Value, key string, step int) (cty.Value, error) {
	ty := v.Type()
	switch {
	case ty.IsObjectType():
		if !ty.HasAttribute(key) {
			return cty.NilVal, fmt.Errorf("%w: step %d: no attribute %q", ErrPathNotFound, step, key)
		}
		return v.GetAttr(key), nil
	case ty.IsMapType():
		idx := cty.StringVal(key)
		if v.HasIndex(idx).False() {
			return cty.NilVal, fmt.Errorf("%w: step %d: no key %q", ErrPathNotFound, step, key)
		}
		return v.Index(idx), nil
	default:
		return cty.NilVal, fmt.Errorf("%w: step %d: cannot take key %q from %s", ErrPathNotFound, step, key, ty.FriendlyName())
	}
}

func pluckIndex(v cty.Value, pos, step int) (cty.Value, error) {
	ty := v.Type()
	if !ty.IsListType() && !ty.IsTupleType() {
		return cty.NilVal, fmt.Errorf("%w: step %d: cannot index into %s", ErrPathNotFound, step, ty.FriendlyName())
	}
	if n := v.LengthInt(); pos < 1 || pos > n {
		return cty.NilVal, fmt.Errorf("%w: step %d: position %d outside [1, %d]", ErrPathNotFound, step, pos, n)
	}
	return v.Index(cty.NumberIntVal(int64(pos - 1))), nil
}
