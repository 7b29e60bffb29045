package main

import (
	"io"
	"strings"
)

// New builds a Program from source text. The source is split into lines
// here; nothing is interpreted until Parse runs.
func New(source string, opts ...Option) *Program {
	p := &Program{
		lines:  strings.Split(source, "\n"),
		labels: make(map[string]int),
	}
	p.apply(opts...)
	return p
}

// WithOutput directs the PRINT_BYTE/PRINT_CHAR output to w.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithStackSize bounds the operand stack at n elements.
func WithStackSize(n int) Option { return withStackSize(n) }

// WithLogf enables per-step trace logging through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }
