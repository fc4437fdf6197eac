package cannolib

import (
	"math"
	"strconv"
	"strings"
)

type NumericKind int

const (
	NumericInteger NumericKind = iota
	NumericFloat
)

// Numeric is the two-rung numeric tower. Mixed integer/float arithmetic
// promotes to float; bitwise operators and shifts are defined on integers
// only.
type Numeric struct {
	Kind NumericKind
	I    int64
	F    float64
}

func NewInteger(value int64) Numeric {
	return Numeric{Kind: NumericInteger, I: value}
}

func NewFloat(value float64) Numeric {
	return Numeric{Kind: NumericFloat, F: value}
}

func (n Numeric) IsInteger() bool {
	return n.Kind == NumericInteger
}

func (n Numeric) AsFloat() float64 {
	if n.Kind == NumericInteger {
		return float64(n.I)
	}
	return n.F
}

// requireInteger unwraps an integer operand for the bitwise operators.
func (n Numeric) requireInteger(op string) int64 {
	if n.Kind != NumericInteger {
		failf("unsupported operand type for %s: numbers must be integers", op)
	}
	return n.I
}

func (n Numeric) Add(other Numeric) Numeric {
	if n.IsInteger() && other.IsInteger() {
		return NewInteger(n.I + other.I)
	}
	return NewFloat(n.AsFloat() + other.AsFloat())
}

func (n Numeric) Sub(other Numeric) Numeric {
	if n.IsInteger() && other.IsInteger() {
		return NewInteger(n.I - other.I)
	}
	return NewFloat(n.AsFloat() - other.AsFloat())
}

func (n Numeric) Mul(other Numeric) Numeric {
	if n.IsInteger() && other.IsInteger() {
		return NewInteger(n.I * other.I)
	}
	return NewFloat(n.AsFloat() * other.AsFloat())
}

// Div is true division: the result is always a float.
func (n Numeric) Div(other Numeric) Numeric {
	rhs := other.AsFloat()
	if rhs == 0 {
		fail("division by zero")
	}
	return NewFloat(n.AsFloat() / rhs)
}

// Mod follows the source language: the result carries the sign of the
// divisor.
func (n Numeric) Mod(other Numeric) Numeric {
	if n.IsInteger() && other.IsInteger() {
		if other.I == 0 {
			fail("modulo by zero")
		}
		rem := n.I % other.I
		if rem != 0 && (rem < 0) != (other.I < 0) {
			rem += other.I
		}
		return NewInteger(rem)
	}
	rhs := other.AsFloat()
	if rhs == 0 {
		fail("modulo by zero")
	}
	rem := math.Mod(n.AsFloat(), rhs)
	if rem != 0 && (rem < 0) != (rhs < 0) {
		rem += rhs
	}
	return NewFloat(rem)
}

func (n Numeric) Pow(other Numeric) Numeric {
	if n.IsInteger() && other.IsInteger() && other.I >= 0 {
		result := int64(1)
		base := n.I
		exp := other.I
		for exp > 0 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
			exp >>= 1
		}
		return NewInteger(result)
	}
	return NewFloat(math.Pow(n.AsFloat(), other.AsFloat()))
}

func (n Numeric) BitAnd(other Numeric) Numeric {
	return NewInteger(n.requireInteger("&") & other.requireInteger("&"))
}

func (n Numeric) BitOr(other Numeric) Numeric {
	return NewInteger(n.requireInteger("|") | other.requireInteger("|"))
}

func (n Numeric) BitXor(other Numeric) Numeric {
	return NewInteger(n.requireInteger("^") ^ other.requireInteger("^"))
}

func (n Numeric) Shl(other Numeric) Numeric {
	shift := other.requireInteger("<<")
	if shift < 0 {
		fail("negative shift count")
	}
	return NewInteger(n.requireInteger("<<") << uint64(shift))
}

func (n Numeric) Shr(other Numeric) Numeric {
	shift := other.requireInteger(">>")
	if shift < 0 {
		fail("negative shift count")
	}
	return NewInteger(n.requireInteger(">>") >> uint64(shift))
}

func (n Numeric) Neg() Numeric {
	if n.IsInteger() {
		return NewInteger(-n.I)
	}
	return NewFloat(-n.F)
}

// BitNot is the bitwise complement; integers only.
func (n Numeric) BitNot() Numeric {
	return NewInteger(^n.requireInteger("~"))
}

func (n Numeric) Equal(other Numeric) bool {
	if n.IsInteger() && other.IsInteger() {
		return n.I == other.I
	}
	return n.AsFloat() == other.AsFloat()
}

// Cmp returns -1, 0 or +1, promoting mixed operands to float.
func (n Numeric) Cmp(other Numeric) int {
	if n.IsInteger() && other.IsInteger() {
		switch {
		case n.I < other.I:
			return -1
		case n.I > other.I:
			return 1
		default:
			return 0
		}
	}
	lhs, rhs := n.AsFloat(), other.AsFloat()
	switch {
	case lhs < rhs:
		return -1
	case lhs > rhs:
		return 1
	default:
		return 0
	}
}

func (n Numeric) ToBool() bool {
	if n.IsInteger() {
		return n.I != 0
	}
	return n.F != 0
}

func (n Numeric) String() string {
	if n.IsInteger() {
		return strconv.FormatInt(n.I, 10)
	}
	if math.IsInf(n.F, 1) {
		return "inf"
	}
	if math.IsInf(n.F, -1) {
		return "-inf"
	}
	if math.IsNaN(n.F) {
		return "nan"
	}
	s := strconv.FormatFloat(n.F, 'g', -1, 64)
	// a float always shows a decimal point
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
