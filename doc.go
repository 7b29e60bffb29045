/*
Command stasm interprets STASM, a tiny line-oriented stack assembly.

A STASM program is a sequence of lines. Each line is blank, a comment
(first token starts with "#"), a label declaration (a bare name
immediately followed by ":"), or a single instruction: a
case-insensitive mnemonic plus, for PUSH and PICK, one whitespace
separated argument. Any first token that is not a known mnemonic is a
call to the label of that name, so subroutines can be called before
they are declared.

The machine itself is as small as the language: a bounded LIFO stack of
bytes that all instructions operate on, an unbounded call stack of
return addresses, a program counter, and a halted flag. Arithmetic
wraps modulo 256.

Instructions:

	push <n>    push the byte n (0..255)
	pop         discard the top of the stack
	dup         copy the top of the stack
	swap        exchange the top two elements
	over        copy the second element over the top
	rotate      bring the third element to the top
	pick <n>    copy the element n below the top (pick 0 is dup)
	add         pop two, push their sum
	sub         pop two, push lower minus upper
	print_byte  pop and print as a decimal number
	print_char  pop and print as a character
	if          run the next arm when the top is nonzero (peeked)
	else        separates the arms of an if
	then        closes an if
	<label>     call the label, to be resumed by return
	return      resume after the most recent call
	halt        stop the machine

Conditionals nest. A false condition skips forward to just past the
matching else (entering the else-body) or then; the body of a taken arm
falls through an else by skipping to just past its then. The skip is a
forward scan over the instruction sequence, not a precomputed jump.

A short program:

	# count 5 down to 1
	PUSH 5
	COUNTDOWN:
	DUP
	PRINT_BYTE
	PUSH 10
	PRINT_CHAR
	PUSH 1
	SUB
	DUP
	IF
	COUNTDOWN
	THEN
	HALT

Malformed programs are rejected before execution starts: duplicate or
missing labels, missing or unparsable arguments, and ill-nested
if/else/then are all parse errors carrying the offending line. At run
time the machine stops with an error on stack overflow or underflow, a
return without a call, or a conditional skip that runs off the end of
the program.

Usage:

	stasm [options] <filename>

	-stack-size n   operand stack capacity (default 256)
	-v, -verbose    print the stack and current instruction before every step
	-s, -step       wait for a line of input after every step
	-trace          log every machine step
*/
package main
