package speech

import "io"

// TailWriter exposes the bounded stderr buffer for testing.
type TailWriter interface {
	io.Writer
	String() string
}

// NewTailWriter exposes newTailWriter for testing.
func NewTailWriter(max int) TailWriter {
	return newTailWriter(max)
}
