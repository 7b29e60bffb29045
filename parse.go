package main

import (
	"strconv"
	"strings"
)

// Parse resolves the Program's source lines into its instruction
// sequence and label table. It must be called exactly once, before the
// first Step; the first malformed line aborts parsing and the Program
// must then be discarded.
//
// Each line holds at most one of: a comment (first token starts with
// "#"), a label declaration (first token is a name ending in ":"), or
// an instruction. Mnemonics are case-insensitive. A first token that is
// no known mnemonic is taken as a call to a label of that name, so
// forward references parse; a post-pass rejects calls that never
// resolve, along with ill-nested IF/ELSE/THEN structure.
func (p *Program) Parse() error {
	for i, line := range p.lines {
		lineNo := i + 1
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		tok := fields[0]
		if strings.HasPrefix(tok, "#") {
			continue
		}
		if strings.HasSuffix(tok, ":") {
			// The label maps to whatever instruction comes next.
			// Anything after the declaration on the same line is
			// ignored.
			name := strings.ToUpper(strings.TrimSuffix(tok, ":"))
			if _, defined := p.labels[name]; defined {
				return ParseError{Err: errDuplicateLabel, Token: tok, Line: lineNo}
			}
			p.labels[name] = len(p.insts)
			continue
		}

		in := inst{line: lineNo}
		switch mn := strings.ToUpper(tok); mn {
		case "PUSH":
			if len(fields) < 2 {
				return ParseError{Err: errMissingArgument, Token: tok, Line: lineNo}
			}
			v, err := strconv.ParseUint(fields[1], 10, 8)
			if err != nil {
				return ParseError{Err: errInvalidArgument, Token: fields[1], Line: lineNo}
			}
			in.op, in.val = opPush, byte(v)
		case "PICK":
			if len(fields) < 2 {
				return ParseError{Err: errMissingArgument, Token: tok, Line: lineNo}
			}
			n, err := strconv.ParseUint(fields[1], 10, strconv.IntSize)
			if err != nil {
				return ParseError{Err: errInvalidArgument, Token: fields[1], Line: lineNo}
			}
			in.op, in.depth = opPick, uint(n)
		default:
			if op, known := mnemonics[mn]; known {
				in.op = op
			} else {
				in.op, in.label = opCall, mn
			}
		}
		p.insts = append(p.insts, in)
	}

	if err := p.checkBranches(); err != nil {
		return err
	}
	return p.checkCalls()
}

// checkBranches verifies that IF/ELSE/THEN nesting is well formed. It
// tracks, per open IF, how many ELSE arms have been seen at that depth.
// Jump targets are not resolved here; the engine locates them by
// scanning forward at run time.
func (p *Program) checkBranches() error {
	var elses []int // per open IF, the number of ELSE arms so far
	for _, in := range p.insts {
		switch in.op {
		case opIf:
			elses = append(elses, 0)
		case opElse:
			if len(elses) == 0 {
				return ParseError{Err: errElseWithoutIf, Line: in.line}
			}
			if elses[len(elses)-1] > 0 {
				return ParseError{Err: errTooManyElse, Line: in.line}
			}
			elses[len(elses)-1]++
		case opThen:
			if len(elses) == 0 {
				return ParseError{Err: errThenWithoutIf, Line: in.line}
			}
			elses = elses[:len(elses)-1]
		}
	}
	return nil
}

// checkCalls rejects calls whose label was never declared, so an
// undefined target is a parse error rather than a runtime surprise.
func (p *Program) checkCalls() error {
	for _, in := range p.insts {
		if in.op == opCall {
			if _, defined := p.labels[in.label]; !defined {
				return ParseError{Err: errInvalidCall, Token: in.label, Line: in.line}
			}
		}
	}
	return nil
}
