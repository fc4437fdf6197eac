package cannolib

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNumericPromotion(t *testing.T) {
	test := require.New(t)

	test.Equal(NewInteger(11), NewInteger(5).Add(NewInteger(6)))
	test.Equal(NewFloat(7.0), NewInteger(5).Add(NewFloat(2.0)))
	test.Equal(NewFloat(3.0), NewFloat(1.0).Add(NewInteger(2)))
}

func TestNumericTrueDivision(t *testing.T) {
	test := require.New(t)

	test.Equal(NewFloat(0.5), NewInteger(1).Div(NewInteger(2)))
	test.Equal(NewFloat(2.5), NewFloat(5.0).Div(NewInteger(2)))
}

func TestNumericEqualPromotes(t *testing.T) {
	test := require.New(t)

	test.True(NewInteger(5).Equal(NewFloat(5.0)))
	test.False(NewInteger(5).Equal(NewFloat(5.1)))
	test.True(NewFloat(0.0).Equal(NewInteger(0)))
}

func TestNumericCmp(t *testing.T) {
	test := require.New(t)

	test.Equal(-1, NewInteger(5).Cmp(NewInteger(6)))
	test.Equal(1, NewInteger(6).Cmp(NewInteger(5)))
	test.Equal(0, NewInteger(5).Cmp(NewInteger(5)))
	test.Equal(-1, NewInteger(5).Cmp(NewFloat(5.5)))
	test.Equal(1, NewFloat(5.5).Cmp(NewInteger(5)))
}

func TestNumericBitwiseRequiresIntegers(t *testing.T) {
	test := require.New(t)

	test.Equal(NewInteger(0), NewInteger(1).BitAnd(NewInteger(2)))
	test.Equal(NewInteger(3), NewInteger(1).BitOr(NewInteger(2)))
	test.Equal(NewInteger(3), NewInteger(1).BitXor(NewInteger(2)))
	test.PanicsWithError("unsupported operand type for &: numbers must be integers", func() {
		NewFloat(1.0).BitAnd(NewInteger(1))
	})
	test.PanicsWithError("unsupported operand type for ~: numbers must be integers", func() {
		NewFloat(1.0).BitNot()
	})
}

func TestNumericToBool(t *testing.T) {
	test := require.New(t)

	test.False(NewInteger(0).ToBool())
	test.False(NewFloat(0.0).ToBool())
	test.True(NewInteger(-1).ToBool())
	test.True(NewFloat(0.0001).ToBool())
}

func TestNumericString(t *testing.T) {
	test := require.New(t)

	test.Equal("5", NewInteger(5).String())
	test.Equal("-5", NewInteger(-5).String())
	test.Equal("2.0", NewFloat(2.0).String())
	test.Equal("2.5", NewFloat(2.5).String())
	test.Equal("0.5", NewFloat(0.5).String())
}

func TestNumericPowIntegerStaysInteger(t *testing.T) {
	test := require.New(t)

	test.Equal(NewInteger(1024), NewInteger(2).Pow(NewInteger(10)))
	test.Equal(NewInteger(1), NewInteger(7).Pow(NewInteger(0)))
	test.Equal(NewFloat(0.5), NewInteger(2).Pow(NewInteger(-1)))
}

func TestNumericFloorMod(t *testing.T) {
	test := require.New(t)

	test.Equal(NewInteger(1), NewInteger(10).Mod(NewInteger(3)))
	test.Equal(NewInteger(2), NewInteger(-4).Mod(NewInteger(3)))
	test.Equal(NewInteger(-2), NewInteger(4).Mod(NewInteger(-3)))
	test.Equal(NewFloat(1.5), NewFloat(7.5).Mod(NewInteger(3)))
}
