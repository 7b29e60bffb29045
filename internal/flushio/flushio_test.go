package flushio

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainWriter hides its buffer so New sees an opaque io.Writer.
type plainWriter struct{ buf bytes.Buffer }

func (w *plainWriter) Write(p []byte) (int, error) { return w.buf.Write(p) }

func TestNewPassesBuffersThrough(t *testing.T) {
	var buf bytes.Buffer
	wf := New(&buf)

	_, err := io.WriteString(wf, "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", buf.String(), "in-memory buffers must not be deferred")
	assert.NoError(t, wf.Flush())
}

func TestNewBuffersPlainWriters(t *testing.T) {
	var w plainWriter
	wf := New(&w)
	require.IsType(t, &bufio.Writer{}, wf)

	_, err := io.WriteString(wf, "hi")
	require.NoError(t, err)
	require.NoError(t, wf.Flush())
	assert.Equal(t, "hi", w.buf.String())
}

func TestNewKeepsWriteFlushers(t *testing.T) {
	var w plainWriter
	wf := New(&w)
	assert.Same(t, wf, New(wf))
}

func TestNewDiscard(t *testing.T) {
	wf := New(io.Discard)
	_, err := io.WriteString(wf, "hi")
	require.NoError(t, err)
	assert.NoError(t, wf.Flush())
}
