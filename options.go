package main

import (
	"io"

	"github.com/stasm-lang/stasm/internal/flushio"
)

// DefaultStackSize is the operand stack capacity used when no
// WithStackSize option is given.
const DefaultStackSize = 256

type Option interface{ apply(p *Program) }

var defaults = []Option{
	withOutput(io.Discard),
	withStackSize(DefaultStackSize),
}

func (p *Program) apply(opts ...Option) {
	for _, opt := range defaults {
		opt.apply(p)
	}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(p)
		}
	}
}

type outputOption struct{ io.Writer }
type stackSizeOption int
type withLogfn func(mess string, args ...interface{})

func withOutput(w io.Writer) outputOption { return outputOption{w} }
func withStackSize(n int) stackSizeOption { return stackSizeOption(n) }

func (o outputOption) apply(p *Program) {
	p.out = flushio.New(o.Writer)
}

func (n stackSizeOption) apply(p *Program) {
	p.stackSize = int(n)
}

func (logfn withLogfn) apply(p *Program) {
	p.logfn = logfn
}
