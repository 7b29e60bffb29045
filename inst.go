package main

import (
	"fmt"
	"strings"
)

// An opCode names one of the machine's operations. The set is closed:
// every switch over an opCode is expected to cover all of them.
type opCode int

const (
	opPush opCode = iota // push the literal operand
	opPop                // discard the top of the stack
	opDup                // copy the top of the stack
	opSwap               // exchange the top two elements
	opRotate             // bring the third-from-top element to the top
	opOver               // copy the second-from-top element to the top
	opPick               // copy the element at depth n to the top
	opAdd                // pop two, push their sum mod 256
	opSub                // pop two, push lower minus upper mod 256
	opPrintByte          // pop and print as a decimal number
	opPrintChar          // pop and print as a character
	opIf                 // enter the branch if the top is nonzero
	opElse               // separates the two arms of an if
	opThen               // closes an if
	opCall               // call a label, pushing a return address
	opReturn             // return to the most recent call site
	opHalt               // stop the machine

	opMax
)

var opNames = [opMax]string{
	"push",
	"pop",
	"dup",
	"swap",
	"rotate",
	"over",
	"pick",
	"add",
	"sub",
	"print_byte",
	"print_char",
	"if",
	"else",
	"then",
	"call",
	"return",
	"halt",
}

// mnemonics maps an upper-cased source token to its opCode. PUSH and
// PICK are absent: they take an argument, and the parser handles them
// before consulting this table. CALL is absent too, since calls are
// written as a bare label name rather than a mnemonic.
var mnemonics = map[string]opCode{
	"POP":        opPop,
	"DUP":        opDup,
	"SWAP":       opSwap,
	"ROTATE":     opRotate,
	"OVER":       opOver,
	"ADD":        opAdd,
	"SUB":        opSub,
	"PRINT_BYTE": opPrintByte,
	"PRINT_CHAR": opPrintChar,
	"IF":         opIf,
	"ELSE":       opElse,
	"THEN":       opThen,
	"RETURN":     opReturn,
	"HALT":       opHalt,
}

// An inst is one parsed instruction annotated with the 1-based source
// line it came from. The line number is carried for diagnostics and
// trace output only; it never affects execution.
//
// Only the operand field named by the op is meaningful: val for opPush,
// depth for opPick, label (already upper-cased) for opCall.
type inst struct {
	op    opCode
	val   byte
	depth uint
	label string
	line  int
}

func (in inst) String() string {
	switch in.op {
	case opPush:
		return fmt.Sprintf("push %d", in.val)
	case opPick:
		return fmt.Sprintf("pick %d", in.depth)
	case opCall:
		return strings.ToLower(in.label)
	default:
		return opNames[in.op]
	}
}
