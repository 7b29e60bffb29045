package main

import (
	"context"
	"strconv"

	"github.com/stasm-lang/stasm/internal/flushio"
)

// A Program is a parsed instruction sequence together with the machine
// state that executes it: a bounded byte-valued operand stack, an
// unbounded call stack of return addresses, a program counter, and a
// halted flag. Construct one with New, call Parse once, then Step until
// the machine halts or an error comes back.
type Program struct {
	lines  []string
	insts  []inst
	labels map[string]int

	pc        int
	stack     []byte
	stackSize int
	callStack []int
	halted    bool

	out   flushio.WriteFlusher
	logfn func(mess string, args ...interface{})
}

func (p *Program) logf(mess string, args ...interface{}) {
	if p.logfn != nil {
		p.logfn(mess, args...)
	}
}

// done reports whether there is nothing left to execute: either the
// machine halted, or the program counter ran off the end of the
// instruction sequence (which is completion too, just not a HALT).
func (p *Program) done() bool {
	return p.halted || p.pc >= len(p.insts)
}

// Step advances execution by exactly one instruction. When the machine
// is already done it is a success no-op. On error the machine state is
// exactly as it was before the call; every runtime error is fatal and
// the caller is expected to stop stepping.
func (p *Program) Step() error {
	if p.done() {
		return nil
	}
	cur := p.insts[p.pc]
	p.logf("step @%d line %d: %v", p.pc, cur.line, cur)

	switch cur.op {
	case opPush:
		if len(p.stack) >= p.stackSize {
			return RuntimeError{Err: errStackOverflow, Inst: cur}
		}
		p.stack = append(p.stack, cur.val)
		p.pc++

	case opPop:
		if len(p.stack) < 1 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.pc++

	case opDup:
		if len(p.stack) < 1 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		p.stack = append(p.stack, p.stack[len(p.stack)-1])
		p.pc++

	case opSwap:
		if len(p.stack) < 2 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		i := len(p.stack) - 1
		p.stack[i], p.stack[i-1] = p.stack[i-1], p.stack[i]
		p.pc++

	case opOver:
		if len(p.stack) < 2 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		p.stack = append(p.stack, p.stack[len(p.stack)-2])
		p.pc++

	case opRotate:
		if len(p.stack) < 3 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		i := len(p.stack) - 1
		p.stack[i-2], p.stack[i-1], p.stack[i] = p.stack[i-1], p.stack[i], p.stack[i-2]
		p.pc++

	case opPick:
		// The depth guard must come before any index arithmetic: with
		// an unsigned depth, len-1-depth wraps when the stack is too
		// shallow.
		if uint(len(p.stack)) <= cur.depth {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		p.stack = append(p.stack, p.stack[uint(len(p.stack))-1-cur.depth])
		p.pc++

	case opAdd, opSub:
		if len(p.stack) < 2 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		upper, lower := p.pop(), p.pop()
		if cur.op == opAdd {
			p.stack = append(p.stack, lower+upper)
		} else {
			p.stack = append(p.stack, lower-upper)
		}
		p.pc++

	case opPrintByte, opPrintChar:
		if len(p.stack) < 1 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		top := p.stack[len(p.stack)-1]
		var err error
		if cur.op == opPrintByte {
			_, err = p.out.Write([]byte(strconv.Itoa(int(top))))
		} else {
			_, err = p.out.Write([]byte(string(rune(top))))
		}
		if err != nil {
			return err
		}
		p.stack = p.stack[:len(p.stack)-1]
		p.pc++

	case opIf:
		if len(p.stack) < 1 {
			return RuntimeError{Err: errStackUnderflow, Inst: cur}
		}
		if p.stack[len(p.stack)-1] > 0 {
			p.pc++ // fall into the then-arm; the condition stays on the stack
		} else {
			next, err := p.scanForward(cur, true)
			if err != nil {
				return err
			}
			p.pc = next
		}

	case opElse:
		// Reached only by falling out of a taken then-arm: skip the
		// else-body.
		next, err := p.scanForward(cur, false)
		if err != nil {
			return err
		}
		p.pc = next

	case opThen:
		p.pc++

	case opCall:
		// The parser already resolved every call target, but the guard
		// stays so a hand-built Program cannot jump into the weeds.
		target, defined := p.labels[cur.label]
		if !defined {
			return RuntimeError{Err: errInvalidLabel, Inst: cur}
		}
		p.callStack = append(p.callStack, p.pc+1)
		p.pc = target

	case opReturn:
		if len(p.callStack) < 1 {
			return RuntimeError{Err: errCallStackUnderflow, Inst: cur}
		}
		p.pc = p.callStack[len(p.callStack)-1]
		p.callStack = p.callStack[:len(p.callStack)-1]

	case opHalt:
		p.halted = true
	}
	return nil
}

func (p *Program) pop() byte {
	i := len(p.stack) - 1
	v := p.stack[i]
	p.stack = p.stack[:i]
	return v
}

// scanForward locates where execution resumes after skipping a branch
// body: starting just past the trigger it walks the instruction
// sequence keeping a nesting depth seeded at 1. A THEN at the trigger's
// depth stops the scan; when stopElse is set (skipping a false IF's
// then-arm) an ELSE at that depth stops it too, landing in the
// else-body. There is no precomputed jump table; each taken skip
// re-scans, which is linear in the branch body and plenty at this
// scale.
func (p *Program) scanForward(trigger inst, stopElse bool) (int, error) {
	depth := 1
	for pc := p.pc + 1; pc < len(p.insts); pc++ {
		switch p.insts[pc].op {
		case opIf:
			depth++
		case opElse:
			if stopElse && depth == 1 {
				p.logf("skip @%d -> @%d (else)", p.pc, pc+1)
				return pc + 1, nil
			}
		case opThen:
			depth--
			if depth == 0 {
				p.logf("skip @%d -> @%d (then)", p.pc, pc+1)
				return pc + 1, nil
			}
		}
	}
	return 0, RuntimeError{Err: errUnclosedIf, Inst: trigger}
}

// Run steps the machine until it is done, the context is canceled, or a
// step fails, then flushes any buffered program output. It is a
// convenience for drivers that do not need per-step control.
func (p *Program) Run(ctx context.Context) error {
	for !p.done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := p.Step(); err != nil {
			return err
		}
	}
	return p.out.Flush()
}
