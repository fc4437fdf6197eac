package cannolib

import "fmt"

type ValueType int

const (
	ValueTypeNumber ValueType = iota
	ValueTypeStr
	ValueTypeBool
	ValueTypeList
	ValueTypeTuple
	ValueTypeFunc
	ValueTypeClass
	ValueTypeObject
	ValueTypeTextIO
	ValueTypeNone
)

// FuncType is the shape of every compiled callable: a positional argument
// sequence plus a name-keyed mapping of keyword arguments. Both are passed
// through verbatim by Value.Call.
type FuncType func(args []Value, kwargs map[string]Value) Value

// Value is the uniform runtime representation of everything a compiled
// program can touch. The variant set is closed; every operation switches
// exhaustively on Type. List and Object payloads are pointers so that every
// binding holding the same value observes the same mutations.
type Value struct {
	Type  ValueType
	Value any
}

var (
	True  = Value{Type: ValueTypeBool, Value: true}
	False = Value{Type: ValueTypeBool, Value: false}
	None  = Value{Type: ValueTypeNone}
)

func NewValueNumber(value Numeric) Value {
	return Value{Type: ValueTypeNumber, Value: value}
}

func NewValueInt(value int64) Value {
	return NewValueNumber(NewInteger(value))
}

func NewValueFloat(value float64) Value {
	return NewValueNumber(NewFloat(value))
}

func NewValueStr(value string) Value {
	return Value{Type: ValueTypeStr, Value: value}
}

func NewValueBool(value bool) Value {
	if value {
		return True
	}
	return False
}

func NewValueList(elements []Value) Value {
	return Value{Type: ValueTypeList, Value: NewListObject(elements)}
}

func NewValueTuple(elements []Value) Value {
	return Value{Type: ValueTypeTuple, Value: NewTupleObject(elements)}
}

func NewValueFunction(fn FuncType) Value {
	return Value{Type: ValueTypeFunc, Value: fn}
}

// NewValueClass builds a class value. The member table is owned by the class
// from here on and must never be mutated again.
func NewValueClass(members map[string]Value) Value {
	return Value{Type: ValueTypeClass, Value: NewClassObject(members)}
}

func NewValueObject(attributes map[string]Value) Value {
	return Value{Type: ValueTypeObject, Value: NewInstanceObject(attributes)}
}

func NewValueTextIO(wrapper *IOWrapper) Value {
	return Value{Type: ValueTypeTextIO, Value: wrapper}
}

func (v Value) String() string {
	switch v.Type {
	case ValueTypeNumber:
		return v.Value.(Numeric).String()

	case ValueTypeStr:
		return v.Value.(string)

	case ValueTypeBool:
		if v.Value.(bool) {
			return "True"
		}
		return "False"

	case ValueTypeList:
		return v.Value.(*ListObject).String()

	case ValueTypeTuple:
		return v.Value.(*TupleObject).String()

	case ValueTypeFunc:
		return "<cannoli function>"

	case ValueTypeObject:
		inst := v.Value.(*InstanceObject)
		name, ok := inst.Get("__name__")
		if !ok {
			fail("missing '__name__' attribute")
		}
		return fmt.Sprintf("<'%s' object at %p>", name, inst)

	case ValueTypeClass:
		class := v.Value.(*ClassObject)
		name, ok := class.Get("__name__")
		if !ok {
			fail("missing '__name__' attribute")
		}
		return fmt.Sprintf("<'%s' class at %p>", name, class)

	case ValueTypeTextIO:
		return "TextIOWrapper"

	case ValueTypeNone:
		return "None"

	default:
		panic(fmt.Sprintf("unknown value type: %d", v.Type))
	}
}

// Repr is the debug rendering. For this value model it is the same text as
// the human-facing one.
func (v Value) Repr() string {
	return v.String()
}

// reprElement renders a sequence element, quoting strings the way the
// source language echoes them inside containers.
func reprElement(v Value) string {
	if CheckType(v, ValueTypeStr) {
		return "'" + v.Value.(string) + "'"
	}
	return v.String()
}

func GetTypeString(value Value) string {
	switch value.Type {
	case ValueTypeNumber:
		return "number"
	case ValueTypeStr:
		return "str"
	case ValueTypeBool:
		return "bool"
	case ValueTypeList:
		return "list"
	case ValueTypeTuple:
		return "tuple"
	case ValueTypeFunc:
		return "function"
	case ValueTypeClass:
		return "class"
	case ValueTypeObject:
		return "object"
	case ValueTypeTextIO:
		return "TextIOWrapper"
	case ValueTypeNone:
		return "NoneType"
	default:
		return "unknown"
	}
}
