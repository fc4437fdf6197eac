package cannolib

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// swapped in tests
var stdout io.Writer = os.Stdout

// Print is the source language's print: arguments render through their
// human-facing form, space-separated, newline-terminated. Keyword
// arguments are accepted and ignored.
var Print = NewValueFunction(func(args []Value, kwargs map[string]Value) Value {
	for i, arg := range args {
		if i > 0 {
			fmt.Fprint(stdout, " ")
		}
		fmt.Fprint(stdout, arg.String())
	}
	fmt.Fprintln(stdout)
	return None
})

// Len returns the length of a string, list or tuple as a Number.
var Len = NewValueFunction(func(args []Value, kwargs map[string]Value) Value {
	if len(args) != 1 {
		failf("len() takes exactly one argument (%d given)", len(args))
	}
	value := args[0]
	switch value.Type {
	case ValueTypeStr:
		return NewValueInt(int64(utf8.RuneCountInString(value.Value.(string))))
	case ValueTypeList:
		return NewValueInt(int64(value.Value.(*ListObject).Len()))
	case ValueTypeTuple:
		return NewValueInt(int64(value.Value.(*TupleObject).Len()))
	default:
		failf("object of type '%s' has no len()", GetTypeString(value))
		return None
	}
})

// Str renders any value to its textual form.
var Str = NewValueFunction(func(args []Value, kwargs map[string]Value) Value {
	if len(args) != 1 {
		failf("str() takes exactly one argument (%d given)", len(args))
	}
	return NewValueStr(args[0].String())
})
