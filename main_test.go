package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stasm-lang/stasm/internal/flushio"
)

func TestDrive_verbose(t *testing.T) {
	var buf bytes.Buffer
	out := flushio.New(&buf)
	p := New("PUSH 1\nHALT", WithOutput(out))
	require.NoError(t, p.Parse())

	require.NoError(t, drive(p, out, true, false))

	assert.Equal(t, ""+
		"Stack: []\n"+
		"Line 1: push 1\n"+
		"Stack: [1]\n"+
		"Line 2: halt\n"+
		"Program halted.\n"+
		"Final stack: [1]\n",
		buf.String())
}

func TestDrive_quiet(t *testing.T) {
	var buf bytes.Buffer
	out := flushio.New(&buf)
	p := New("PUSH 56\nPRINT_BYTE\nHALT", WithOutput(out))
	require.NoError(t, p.Parse())

	require.NoError(t, drive(p, out, false, false))
	assert.Equal(t, "56", buf.String())
}

func TestDrive_runtimeError(t *testing.T) {
	var buf bytes.Buffer
	out := flushio.New(&buf)
	p := New("POP", WithOutput(out))
	require.NoError(t, p.Parse())

	err := drive(p, out, true, false)
	assert.ErrorIs(t, err, errStackUnderflow)
	assert.Equal(t, "Stack: []\nLine 1: pop\n", buf.String())
}

func TestExamples(t *testing.T) {
	for file, want := range map[string]string{
		"hello.stasm":     "Hi!\n",
		"calc.stasm":      "6\n",
		"countdown.stasm": "5\n4\n3\n2\n1\n",
	} {
		t.Run(file, func(t *testing.T) {
			source, err := os.ReadFile(filepath.Join("examples", file))
			require.NoError(t, err)

			var out bytes.Buffer
			p := New(string(source), WithOutput(&out))
			require.NoError(t, p.Parse())
			require.NoError(t, p.Run(context.Background()))
			assert.Equal(t, want, out.String())
		})
	}
}
