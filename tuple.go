package cannolib

import "strings"

// TupleObject is the fixed sequence. It is never mutated after
// construction, so sharing the backing storage is indistinguishable from
// copying it.
type TupleObject struct {
	Elements []Value
}

func NewTupleObject(elements []Value) *TupleObject {
	return &TupleObject{Elements: elements}
}

func (t *TupleObject) Len() int {
	return len(t.Elements)
}

func (t *TupleObject) Index(index Value) Value {
	at := seqIndex(index, "tuple")
	if at < 0 {
		at += int64(len(t.Elements))
	}
	if at < 0 || at >= int64(len(t.Elements)) {
		fail("tuple index out of range")
	}
	return t.Elements[at]
}

func (t *TupleObject) Slice(lower, upper, step *Value) Value {
	return NewValueTuple(sliceSeq(t.Elements, lower, upper, step, "tuple"))
}

func (t *TupleObject) Contains(value Value) bool {
	for _, element := range t.Elements {
		if value.Eq(element) {
			return true
		}
	}
	return false
}

func (t *TupleObject) ToBool() bool {
	return len(t.Elements) != 0
}

func (t *TupleObject) Equal(other *TupleObject) bool {
	if len(t.Elements) != len(other.Elements) {
		return false
	}
	for i, element := range t.Elements {
		if !element.Eq(other.Elements[i]) {
			return false
		}
	}
	return true
}

func (t *TupleObject) CloneSeq() []Value {
	snapshot := make([]Value, len(t.Elements))
	copy(snapshot, t.Elements)
	return snapshot
}

func (t *TupleObject) String() string {
	if len(t.Elements) == 1 {
		return "(" + reprElement(t.Elements[0]) + ",)"
	}
	parts := make([]string, 0, len(t.Elements))
	for _, element := range t.Elements {
		parts = append(parts, reprElement(element))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
