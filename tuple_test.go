package cannolib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTupleValueSemantics(t *testing.T) {
	test := require.New(t)

	// independently constructed tuples with equal contents are equal
	a := NewValueTuple([]Value{NewValueInt(1), NewValueStr("x")})
	b := NewValueTuple([]Value{NewValueInt(1), NewValueStr("x")})
	test.True(a.Eq(b))
	test.False(a.Ne(b))

	c := NewValueTuple([]Value{NewValueInt(2), NewValueStr("x")})
	test.False(a.Eq(c))
}

func TestTupleSlice(t *testing.T) {
	test := require.New(t)

	tup := NewValueTuple([]Value{
		NewValueInt(0), NewValueInt(1), NewValueInt(2), NewValueInt(3),
	})
	lo := NewValueInt(1)
	sliced := tup.Slice(&lo, nil, nil)

	test.True(CheckType(sliced, ValueTypeTuple))
	test.True(sliced.Eq(NewValueTuple([]Value{
		NewValueInt(1), NewValueInt(2), NewValueInt(3),
	})))
}

func TestTupleContains(t *testing.T) {
	test := require.New(t)

	tup := NewValueTuple([]Value{NewValueInt(1), None})
	test.True(None.ContainedIn(tup))
	test.False(NewValueStr("1").ContainedIn(tup))
}

func TestTupleNestedInList(t *testing.T) {
	test := require.New(t)

	inner := NewValueTuple([]Value{NewValueInt(1), NewValueInt(2)})
	list := NewValueList([]Value{inner})

	probe := NewValueTuple([]Value{NewValueInt(1), NewValueInt(2)})
	test.True(probe.ContainedIn(list))
	test.Equal("[(1, 2)]", list.String())
}
