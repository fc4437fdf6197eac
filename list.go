package cannolib

import "strings"

// ListObject is the ordered mutable sequence. Values hold it by pointer, so
// every binding that shares one list observes in-place mutation through any
// of them.
type ListObject struct {
	Elements []Value
}

func NewListObject(elements []Value) *ListObject {
	return &ListObject{Elements: elements}
}

func (l *ListObject) Len() int {
	return len(l.Elements)
}

func (l *ListObject) Index(index Value) Value {
	at := l.position(index)
	return l.Elements[at]
}

func (l *ListObject) Set(index Value, value Value) {
	at := l.position(index)
	l.Elements[at] = value
}

func (l *ListObject) Append(value Value) {
	l.Elements = append(l.Elements, value)
}

func (l *ListObject) Pop() Value {
	if len(l.Elements) == 0 {
		fail("pop from empty list")
	}
	top := l.Elements[len(l.Elements)-1]
	l.Elements = l.Elements[:len(l.Elements)-1]
	return top
}

func (l *ListObject) position(index Value) int {
	at := seqIndex(index, "list")
	if at < 0 {
		at += int64(len(l.Elements))
	}
	if at < 0 || at >= int64(len(l.Elements)) {
		fail("list index out of range")
	}
	return int(at)
}

func (l *ListObject) Slice(lower, upper, step *Value) Value {
	return NewValueList(sliceSeq(l.Elements, lower, upper, step, "list"))
}

func (l *ListObject) Contains(value Value) bool {
	for _, element := range l.Elements {
		if value.Eq(element) {
			return true
		}
	}
	return false
}

func (l *ListObject) ToBool() bool {
	return len(l.Elements) != 0
}

func (l *ListObject) Equal(other *ListObject) bool {
	if len(l.Elements) != len(other.Elements) {
		return false
	}
	for i, element := range l.Elements {
		if !element.Eq(other.Elements[i]) {
			return false
		}
	}
	return true
}

// CloneSeq snapshots the current contents, so a for-loop keeps a stable
// cursor while its body mutates the list.
func (l *ListObject) CloneSeq() []Value {
	snapshot := make([]Value, len(l.Elements))
	copy(snapshot, l.Elements)
	return snapshot
}

func (l *ListObject) String() string {
	parts := make([]string, 0, len(l.Elements))
	for _, element := range l.Elements {
		parts = append(parts, reprElement(element))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// seqIndex unwraps an integer index operand.
func seqIndex(index Value, what string) int64 {
	if !CheckType(index, ValueTypeNumber) {
		failf("%s indices must be integers", what)
	}
	num := index.Value.(Numeric)
	if !num.IsInteger() {
		failf("%s indices must be integers", what)
	}
	return num.I
}

// sliceSeq implements slicing with the source language's rules: negative
// bounds count from the end, out-of-range bounds clamp, a negative step
// walks backwards, a zero step is an error.
func sliceSeq(elements []Value, lower, upper, step *Value, what string) []Value {
	length := int64(len(elements))

	stride := int64(1)
	if step != nil {
		stride = seqIndex(*step, what)
		if stride == 0 {
			fail("slice step cannot be zero")
		}
	}

	var start, stop int64
	if stride > 0 {
		start, stop = 0, length
	} else {
		start, stop = length-1, -1
	}

	clamp := func(bound int64) int64 {
		if bound < 0 {
			bound += length
		}
		if bound < 0 {
			if stride > 0 {
				return 0
			}
			return -1
		}
		if bound >= length {
			if stride > 0 {
				return length
			}
			return length - 1
		}
		return bound
	}

	if lower != nil {
		start = clamp(seqIndex(*lower, what))
	}
	if upper != nil {
		stop = clamp(seqIndex(*upper, what))
	}

	result := []Value{}
	if stride > 0 {
		for i := start; i < stop; i += stride {
			result = append(result, elements[i])
		}
	} else {
		for i := start; i > stop; i += stride {
			result = append(result, elements[i])
		}
	}
	return result
}
