package cannolib

import (
	"fmt"
	"os"
)

// RuntimeError is an uncaught source-level error: a type-mismatched
// operator, a missing attribute, a call on something that is not callable.
// It is carried by panic up to Execute; there is no recovery path below
// that. Panics of any other type are defects in the emitting compiler and
// are not translated.
type RuntimeError struct {
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

func fail(message string) {
	panic(&RuntimeError{Message: message})
}

func failf(format string, args ...any) {
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...)})
}

// replaced in tests
var osExit = os.Exit

// Execute runs the body of a compiled program and turns an uncaught
// RuntimeError into a process abort with the message on stderr, mirroring
// an uncaught exception in the source language. Every other panic is
// re-raised untouched.
func Execute(program func()) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(*RuntimeError); ok {
				fmt.Fprintf(os.Stderr, "RuntimeError: %s\n", err.Message)
				osExit(1)
				return
			}
			panic(r)
		}
	}()
	program()
}
