// Package flushio adapts arbitrary writers into flushable output
// sinks. The interpreter's print instructions write through one, and
// the driver flushes it before interactive prompts so program output is
// never held back behind a read.
package flushio

import (
	"bufio"
	"io"
)

// WriteFlusher is an io.Writer whose buffered content can be pushed
// out on demand.
type WriteFlusher interface {
	io.Writer
	Flush() error
}

// New wraps w into a WriteFlusher. Writers that already flush, and
// writers that do not buffer at all (in-memory buffers, the discard
// writer), are passed through with at most a no-op Flush; everything
// else gets a bufio.Writer in front.
func New(w io.Writer) WriteFlusher {
	if wf, ok := w.(WriteFlusher); ok {
		return wf
	}
	if w == io.Discard {
		return nopFlusher{w}
	}
	type buffer interface {
		io.Writer
		Len() int
		Reset()
	}
	if _, ok := w.(buffer); ok {
		return nopFlusher{w}
	}
	return bufio.NewWriter(w)
}

type nopFlusher struct{ io.Writer }

func (nopFlusher) Flush() error { return nil }
