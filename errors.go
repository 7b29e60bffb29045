package main

import (
	"errors"
	"fmt"
)

// Parse-time error kinds. A Program that failed to parse must be
// discarded; none of these are recoverable.
var (
	errDuplicateLabel  = errors.New("duplicate label")
	errInvalidArgument = errors.New("invalid argument")
	errMissingArgument = errors.New("missing argument for")
	errInvalidCall     = errors.New("call to undefined label")
	errElseWithoutIf   = errors.New("ELSE without IF")
	errThenWithoutIf   = errors.New("THEN without IF")
	errTooManyElse     = errors.New("multiple ELSE statements for single IF")
)

// Runtime error kinds. Every one of them is fatal to the run; the
// machine has no notion of partial failure.
var (
	errStackOverflow      = errors.New("stack overflow")
	errStackUnderflow     = errors.New("stack underflow")
	errInvalidLabel       = errors.New("invalid label")
	errCallStackUnderflow = errors.New("call stack underflow")
	errUnclosedIf         = errors.New("unclosed IF statement")
)

// A ParseError wraps one of the parse-time kinds with the offending
// source line and, for most kinds, the offending token text.
type ParseError struct {
	Err   error
	Token string
	Line  int
}

func (e ParseError) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("parse error at line %d: %v %q", e.Line, e.Err, e.Token)
	}
	return fmt.Sprintf("parse error at line %d: %v", e.Line, e.Err)
}

func (e ParseError) Unwrap() error { return e.Err }

// A RuntimeError wraps one of the runtime kinds with the instruction
// whose precondition failed.
type RuntimeError struct {
	Err  error
	Inst inst
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d: %v (%v)", e.Inst.line, e.Err, e.Inst)
}

func (e RuntimeError) Unwrap() error { return e.Err }
