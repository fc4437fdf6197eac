package cannolib

import (
	"fmt"
	"strings"
)

// ToBool is the truthiness coercion behind every conditional the compiler
// emits. Calling it on a stream wrapper is a defect in the emitting code,
// not a source-level error, so that branch is a plain panic.
func (v Value) ToBool() bool {
	switch v.Type {
	case ValueTypeNumber:
		return v.Value.(Numeric).ToBool()
	case ValueTypeStr:
		return v.Value.(string) != ""
	case ValueTypeBool:
		return v.Value.(bool)
	case ValueTypeList:
		return v.Value.(*ListObject).ToBool()
	case ValueTypeTuple:
		return v.Value.(*TupleObject).ToBool()
	case ValueTypeFunc, ValueTypeClass, ValueTypeObject:
		return true
	case ValueTypeNone:
		return false
	default:
		panic(fmt.Sprintf("to_bool on %s", GetTypeString(v)))
	}
}

// LogicalNot translates the source language's `not` keyword. It always
// returns a Bool; the bitwise complement lives on BitNot.
func (v Value) LogicalNot() Value {
	return NewValueBool(!v.ToBool())
}

// Eq is structural equality. Cross-variant comparison is not equal, never
// an error. Variants without an equality rule (functions, classes, objects,
// streams) are rejected outright.
func (v Value) Eq(other Value) bool {
	if v.Type != other.Type {
		return false
	}
	switch v.Type {
	case ValueTypeNumber:
		return v.Value.(Numeric).Equal(other.Value.(Numeric))
	case ValueTypeStr:
		return v.Value.(string) == other.Value.(string)
	case ValueTypeBool:
		return v.Value.(bool) == other.Value.(bool)
	case ValueTypeList:
		return v.Value.(*ListObject).Equal(other.Value.(*ListObject))
	case ValueTypeTuple:
		return v.Value.(*TupleObject).Equal(other.Value.(*TupleObject))
	case ValueTypeNone:
		return true
	default:
		failf("operation '==' not supported between %s values", GetTypeString(v))
		return false
	}
}

func (v Value) Ne(other Value) bool {
	return !v.Eq(other)
}

// compare orders Number-Number, Str-Str and Bool-Bool pairs. There is no
// total order across variants.
func (v Value) compare(op string, other Value) int {
	if CheckType(v, ValueTypeNumber) && CheckType(other, ValueTypeNumber) {
		return v.Value.(Numeric).Cmp(other.Value.(Numeric))
	}
	if CheckType(v, ValueTypeStr) && CheckType(other, ValueTypeStr) {
		return strings.Compare(v.Value.(string), other.Value.(string))
	}
	if CheckType(v, ValueTypeBool) && CheckType(other, ValueTypeBool) {
		lhs, rhs := boolToInt(v.Value.(bool)), boolToInt(other.Value.(bool))
		return int(lhs - rhs)
	}
	failf("operation '%s' not supported between these values", op)
	return 0
}

func (v Value) Lt(other Value) bool {
	return v.compare("<", other) < 0
}

func (v Value) Le(other Value) bool {
	return v.compare("<=", other) <= 0
}

func (v Value) Gt(other Value) bool {
	return v.compare(">", other) > 0
}

func (v Value) Ge(other Value) bool {
	return v.compare(">=", other) >= 0
}

func (v Value) Add(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Add(other.Value.(Numeric)))
	}
	if CheckType(v, ValueTypeStr) && CheckType(other, ValueTypeStr) {
		return NewValueStr(v.Value.(string) + other.Value.(string))
	}
	failf("cannot add types: %s and %s", GetTypeString(v), GetTypeString(other))
	return None
}

func (v Value) Sub(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Sub(other.Value.(Numeric)))
	}
	failf("cannot subtract types: %s and %s", GetTypeString(v), GetTypeString(other))
	return None
}

func (v Value) Mul(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Mul(other.Value.(Numeric)))
	}
	failf("cannot multiply types: %s and %s", GetTypeString(v), GetTypeString(other))
	return None
}

func (v Value) Div(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Div(other.Value.(Numeric)))
	}
	failf("cannot divide types: %s and %s", GetTypeString(v), GetTypeString(other))
	return None
}

func (v Value) Mod(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Mod(other.Value.(Numeric)))
	}
	failf("cannot modulo types: %s and %s", GetTypeString(v), GetTypeString(other))
	return None
}

func (v Value) Pow(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Pow(other.Value.(Numeric)))
	}
	fail("pow() unsupported for specified values")
	return None
}

func (v Value) BitAnd(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).BitAnd(other.Value.(Numeric)))
	}
	fail("bitwise AND applies to numbers")
	return None
}

func (v Value) BitOr(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).BitOr(other.Value.(Numeric)))
	}
	fail("bitwise OR applies to numbers")
	return None
}

func (v Value) BitXor(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).BitXor(other.Value.(Numeric)))
	}
	fail("bitwise XOR applies to numbers")
	return None
}

func (v Value) Shl(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Shl(other.Value.(Numeric)))
	}
	fail("left shift applies to numbers")
	return None
}

func (v Value) Shr(other Value) Value {
	if IsNumberType(v) && IsNumberType(other) {
		return NewValueNumber(v.Value.(Numeric).Shr(other.Value.(Numeric)))
	}
	fail("right shift applies to numbers")
	return None
}

// Neg is unary minus. Booleans coerce to 0/1 first.
func (v Value) Neg() Value {
	switch v.Type {
	case ValueTypeNumber:
		return NewValueNumber(v.Value.(Numeric).Neg())
	case ValueTypeBool:
		return NewValueInt(-boolToInt(v.Value.(bool)))
	default:
		fail("bad operand type for unary -")
		return None
	}
}

// BitNot is the bitwise complement of the source language's `~`, distinct
// from LogicalNot.
func (v Value) BitNot() Value {
	switch v.Type {
	case ValueTypeNumber:
		return NewValueNumber(v.Value.(Numeric).BitNot())
	case ValueTypeBool:
		return NewValueInt(^boolToInt(v.Value.(bool)))
	default:
		fail("bad operand type for unary ~")
		return None
	}
}

func (v Value) Index(index Value) Value {
	switch v.Type {
	case ValueTypeList:
		return v.Value.(*ListObject).Index(index)
	case ValueTypeTuple:
		return v.Value.(*TupleObject).Index(index)
	default:
		fail("value not subscriptable")
		return None
	}
}

// SetIndex is item assignment. Only lists are mutable in place.
func (v Value) SetIndex(index Value, value Value) {
	if !CheckType(v, ValueTypeList) {
		failf("%s does not support item assignment", GetTypeString(v))
	}
	v.Value.(*ListObject).Set(index, value)
}

func (v Value) Slice(lower, upper, step *Value) Value {
	switch v.Type {
	case ValueTypeList:
		return v.Value.(*ListObject).Slice(lower, upper, step)
	case ValueTypeTuple:
		return v.Value.(*TupleObject).Slice(lower, upper, step)
	default:
		fail("value not subscriptable")
		return None
	}
}

// ContainedIn implements the source language's `in`. Membership in a
// string is substring search and requires a string left operand.
func (v Value) ContainedIn(iterable Value) bool {
	switch iterable.Type {
	case ValueTypeList:
		return iterable.Value.(*ListObject).Contains(v)
	case ValueTypeTuple:
		return iterable.Value.(*TupleObject).Contains(v)
	case ValueTypeStr:
		if !CheckType(v, ValueTypeStr) {
			fail("in '<string>' string required as left operand")
		}
		return strings.Contains(iterable.Value.(string), v.Value.(string))
	default:
		fail("value is not iterable")
		return false
	}
}

// NotContainedIn is `not in` as a first-class operation, so generated code
// never has to wrap ContainedIn in its own negation.
func (v Value) NotContainedIn(iterable Value) bool {
	return !v.ContainedIn(iterable)
}

// CloneSeq snapshots a list's or tuple's contents for for-loop iteration.
// Each call produces a fresh snapshot, so the loop cursor is immune to
// mutation by the loop body.
func (v Value) CloneSeq() []Value {
	switch v.Type {
	case ValueTypeList:
		return v.Value.(*ListObject).CloneSeq()
	case ValueTypeTuple:
		return v.Value.(*TupleObject).CloneSeq()
	default:
		fail("value not iterable")
		return nil
	}
}

// Call invokes a function or instantiates a class. Instantiation copies the
// class's member table into a fresh object, runs __init__ (when present)
// with the object prepended to the positional arguments, discards its
// result, and returns the object either way.
func (v Value) Call(args []Value, kwargs map[string]Value) Value {
	switch v.Type {
	case ValueTypeFunc:
		return v.Value.(FuncType)(args, kwargs)

	case ValueTypeClass:
		class := v.Value.(*ClassObject)
		attributes := make(map[string]Value, len(class.Members))
		for name, member := range class.Members {
			attributes[name] = member
		}
		obj := NewValueObject(attributes)

		if init, ok := class.Get("__init__"); ok {
			amended := make([]Value, 0, len(args)+1)
			amended = append(amended, obj)
			amended = append(amended, args...)
			init.Call(amended, kwargs)
		}
		return obj

	default:
		failf("%s is not callable", GetTypeString(v))
		return None
	}
}

// GetAttr resolves an attribute on an object or class. Attribute access on
// any other variant should have been rejected upstream, so that branch is a
// plain panic.
func (v Value) GetAttr(attr string) Value {
	switch v.Type {
	case ValueTypeObject:
		if value, ok := v.Value.(*InstanceObject).Get(attr); ok {
			return value
		}
		failf("object has no attribute '%s'", attr)
		return None

	case ValueTypeClass:
		if value, ok := v.Value.(*ClassObject).Get(attr); ok {
			return value
		}
		failf("class has no attribute '%s'", attr)
		return None

	default:
		panic(fmt.Sprintf("get_attr on %s", GetTypeString(v)))
	}
}

// SetAttr assigns an attribute on an object. Class member tables are
// immutable after construction.
func (v Value) SetAttr(attr string, value Value) {
	switch v.Type {
	case ValueTypeObject:
		v.Value.(*InstanceObject).Set(attr, value)

	case ValueTypeClass:
		failf("cannot set attribute '%s': class members are immutable", attr)

	default:
		panic(fmt.Sprintf("set_attr on %s", GetTypeString(v)))
	}
}
