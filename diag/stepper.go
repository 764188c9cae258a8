package diag

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Stepper drives a Host one instruction at a time, printing a register
// dump after each and waiting for a keypress before continuing — the
// interactive counterpart to Run, grounded in the raw-terminal handling
// the Intuition Engine's TerminalHost uses for its own stdin reader.
type Stepper struct {
	Host *Host
	Out  io.Writer
}

// NewStepper wraps host for interactive single-stepping, writing register
// dumps to out.
func NewStepper(host *Host, out io.Writer) *Stepper {
	return &Stepper{Host: host, Out: out}
}

// Run puts stdin into raw mode and single-steps until the program
// warm-boots, halts, or the user presses 'q'. Any other key advances one
// instruction.
func (s *Stepper) Run() (Result, error) {
	fd := int(os.Stdin.Fd())
	oldState, rawErr := term.MakeRaw(fd)
	if rawErr == nil {
		defer term.Restore(fd, oldState)
	}
	in := bufio.NewReader(os.Stdin)

	for steps := 0; steps < s.Host.MaxSteps; steps++ {
		s.printState(steps)

		if s.Host.CPU.PC == 0x0000 {
			return Result{Steps: steps, WarmBoot: true}, nil
		}
		if s.Host.CPU.PC == bdosEntry {
			s.Host.serviceBDOS()
		}

		key, _, err := in.ReadRune()
		if err == nil && (key == 'q' || key == 'Q') {
			return Result{Steps: steps}, nil
		}

		res, err := s.Host.CPU.Step()
		if err != nil {
			return Result{Steps: steps}, err
		}
		if res.Halted {
			return Result{Steps: steps + 1, Halted: true}, nil
		}
	}
	return Result{Steps: s.Host.MaxSteps}, fmt.Errorf("diag: exceeded %d steps without warm boot", s.Host.MaxSteps)
}

func (s *Stepper) printState(step int) {
	c := s.Host.CPU
	fmt.Fprintf(s.Out, "\r\n#%-6d PC=%04X SP=%04X AF=%04X BC=%04X DE=%04X HL=%04X IX=%04X IY=%04X\r\n",
		step, c.PC, c.SP, c.AF(), c.BC(), c.DE(), c.HL(), c.IX, c.IY)
}
