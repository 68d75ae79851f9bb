package bfvm

import (
	"fmt"
	"io"
)

type CellPolicy uint8

const (
	// CellChecked halts when a cell would leave the 8-bit range.
	CellChecked CellPolicy = iota
	// CellWrap wraps cells modulo 256.
	CellWrap
)

func (c CellPolicy) String() string {
	switch c {
	case CellChecked:
		return "checked"
	case CellWrap:
		return "wrap"
	}
	return fmt.Sprintf("cell-policy(%d)", uint8(c))
}

func ParseCellPolicy(s string) (CellPolicy, error) {
	switch s {
	case "", "checked":
		return CellChecked, nil
	case "wrap":
		return CellWrap, nil
	}
	return 0, fmt.Errorf("unknown cell policy: %s", s)
}

func (c *CellPolicy) UnmarshalText(text []byte) (err error) {
	*c, err = ParseCellPolicy(string(text))
	return
}

type VM struct {
	Program Program
	Input   []byte
	State   *State

	CellPolicy CellPolicy
	// MaxSteps halts with HaltStepLimit once reached. Zero means no limit.
	MaxSteps int
	// CheckInterval is the number of steps between Interrupt yields in Run. Zero disables them.
	CheckInterval int
	// Sink receives rendered output as it is produced.
	Sink        io.Writer
	Placeholder string

	jumps Jumps
}

func NewVM(program Program, input []byte) *VM {
	return &VM{
		Program:     program,
		Input:       input,
		State:       newState(),
		Placeholder: Placeholder,
	}
}

// UseJumpTable precomputes bracket targets so JumpZero does not scan.
func (v *VM) UseJumpTable() {
	// unmatched brackets keep -1 and fall back to the halting path
	v.jumps, _ = v.Program.Jumps()
}

func (v *VM) UsesJumpTable() bool {
	return v.jumps != nil
}

// Done reports whether no further step will run.
func (v *VM) Done() bool {
	s := v.State
	return s.Halt != nil || s.IP < 0 || s.IP >= len(v.Program)
}

func (v *VM) halt(kind HaltKind, format string, args ...any) *Halt {
	s := v.State
	h := &Halt{
		Kind:    kind,
		IP:      s.IP,
		DP:      s.DP,
		Message: fmt.Sprintf(format, args...),
	}
	s.Halt = h
	return h
}

// Interrupt stops the machine on behalf of the caller.
func (v *VM) Interrupt(reason string) *Halt {
	if v.State.Halt != nil {
		return v.State.Halt
	}
	return v.halt(HaltInterrupted, "%s", reason)
}
