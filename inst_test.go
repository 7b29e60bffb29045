package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstString(t *testing.T) {
	for _, tc := range []struct {
		in   inst
		want string
	}{
		{inst{op: opPush, val: 5}, "push 5"},
		{inst{op: opPush, val: 255}, "push 255"},
		{inst{op: opPick, depth: 2}, "pick 2"},
		{inst{op: opCall, label: "FOO"}, "foo"},
		{inst{op: opPop}, "pop"},
		{inst{op: opRotate}, "rotate"},
		{inst{op: opPrintByte}, "print_byte"},
		{inst{op: opPrintChar}, "print_char"},
		{inst{op: opIf}, "if"},
		{inst{op: opReturn}, "return"},
		{inst{op: opHalt}, "halt"},
	} {
		assert.Equal(t, tc.want, tc.in.String())
	}
}

func TestOpNamesCoverAllOps(t *testing.T) {
	for op := opCode(0); op < opMax; op++ {
		assert.NotEmpty(t, opNames[op], "opCode %d has no name", op)
	}
}
