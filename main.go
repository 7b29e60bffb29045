package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"

	"github.com/stasm-lang/stasm/internal/flushio"
)

func main() {
	var (
		stackSize = flag.Int("stack-size", DefaultStackSize, "operand stack capacity")
		trace     = flag.Bool("trace", false, "log every machine step")
		verbose   bool
		step      bool
	)
	flag.BoolVar(&verbose, "verbose", false, "print the stack and current instruction before every step")
	flag.BoolVar(&verbose, "v", false, "shorthand for -verbose")
	flag.BoolVar(&step, "step", false, "wait for a line of input after every step")
	flag.BoolVar(&step, "s", false, "shorthand for -step")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: stasm [options] <filename>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	source, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		fatal(err)
	}

	out := flushio.New(os.Stdout)
	opts := []Option{
		WithOutput(out),
		WithStackSize(*stackSize),
	}
	if *trace {
		opts = append(opts, WithLogf(log.Printf))
	}

	prog := New(string(source), opts...)
	if err := prog.Parse(); err != nil {
		fatal(err)
	}

	err = drive(prog, out, verbose, step)
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "stasm:", err)
	os.Exit(1)
}

// drive runs the step loop the way the interactive modes need it: in
// verbose or step mode each iteration first shows the stack and the
// instruction about to execute, and step mode then waits for a line of
// input before proceeding.
func drive(p *Program, out flushio.WriteFlusher, verbose, step bool) error {
	var pause *stepper
	if step {
		pause = newStepper()
		defer pause.Close()
	}

	for !p.done() {
		if verbose || step {
			cur := p.insts[p.pc]
			fmt.Fprintf(out, "Stack: %v\n", p.stack)
			fmt.Fprintf(out, "Line %d: %v\n", cur.line, cur)
		}
		if step {
			// Program output must not sit in the buffer while we wait.
			if err := out.Flush(); err != nil {
				return err
			}
			more, err := pause.wait()
			if err != nil {
				return err
			}
			step = more // EOF degrades to free-running
		}
		if err := p.Step(); err != nil {
			return err
		}
	}

	if verbose || step {
		if p.halted {
			fmt.Fprintln(out, "Program halted.")
		}
		fmt.Fprintf(out, "Final stack: %v\n", p.stack)
	}
	return nil
}

// A stepper blocks between single steps. On a terminal it uses a line
// editor; with stdin redirected it consumes plain lines instead.
type stepper struct {
	term *liner.State
	in   *bufio.Reader
}

func newStepper() *stepper {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return &stepper{term: liner.NewLiner()}
	}
	return &stepper{in: bufio.NewReader(os.Stdin)}
}

func (s *stepper) Close() error {
	if s.term != nil {
		return s.term.Close()
	}
	return nil
}

// wait blocks until the user enters a line. It reports false once input
// is exhausted (Ctrl-D, or a closed pipe), which turns stepping off for
// the rest of the run.
func (s *stepper) wait() (bool, error) {
	if s.term != nil {
		_, err := s.term.Prompt("")
		switch err {
		case nil:
			return true, nil
		case io.EOF, liner.ErrPromptAborted:
			return false, nil
		}
		return false, err
	}
	_, err := s.in.ReadString('\n')
	switch err {
	case nil:
		return true, nil
	case io.EOF:
		return false, nil
	}
	return false, err
}
