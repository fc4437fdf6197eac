package cannolib

import "io"

// IOWrapper is an opaque stream handle. The value model only stores and
// renders it; interpreting the stream belongs to the generated code's I/O
// layer.
type IOWrapper struct {
	Name   string
	Stream io.ReadWriter
}

func NewIOWrapper(name string, stream io.ReadWriter) *IOWrapper {
	return &IOWrapper{Name: name, Stream: stream}
}
