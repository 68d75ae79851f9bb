package bfvm

import (
	"context"
	"errors"
	"fmt"
)

type Interrupt struct {
	Steps int
}

// Step executes the operator at the instruction pointer.
// It returns a *Halt when the operator halts the machine, or a Sink write error.
func (v *VM) Step() error {
	if v.Done() {
		return v.State.Err()
	}

	s := v.State
	switch op := v.Program[s.IP]; op {

	case OpIncCell:
		if s.Tape[s.DP] == 0xff && v.CellPolicy == CellChecked {
			return v.halt(HaltArithmeticOverflow, "cell %d at 255 incremented", s.DP)
		}
		s.Tape[s.DP]++
		s.IP++

	case OpDecCell:
		if s.Tape[s.DP] == 0 && v.CellPolicy == CellChecked {
			return v.halt(HaltArithmeticUnderflow, "cell %d at 0 decremented", s.DP)
		}
		s.Tape[s.DP]--
		s.IP++

	case OpIncPtr:
		if s.DP >= TapeSize-1 {
			return v.halt(HaltBoundsOverflow, "data pointer moved past cell %d", TapeSize-1)
		}
		s.DP++
		s.IP++

	case OpDecPtr:
		if s.DP <= 0 {
			return v.halt(HaltBoundsUnderflow, "data pointer moved before cell 0")
		}
		s.DP--
		s.IP++

	case OpPrint:
		b := s.Tape[s.DP]
		s.Output = append(s.Output, b)
		s.IP++
		s.Steps++
		if v.Sink != nil {
			var buf [8]byte
			if _, err := v.Sink.Write(AppendText(buf[:0], []byte{b}, v.Placeholder)); err != nil {
				return err
			}
		}
		return nil

	case OpRead:
		if s.InputPos < len(v.Input) {
			s.Tape[s.DP] = v.Input[s.InputPos]
			s.InputPos++
		} else {
			s.Tape[s.DP] = 0
		}
		s.IP++

	case OpJumpZero:
		if s.Tape[s.DP] != 0 {
			s.Loops = append(s.Loops, s.IP)
			s.IP++
			break
		}
		var target int
		if v.jumps != nil {
			target = v.jumps[s.IP]
		} else {
			target = v.Program.scanForward(s.IP)
		}
		if target < 0 {
			return v.halt(HaltUnterminatedLoop, "no matching ] for [ at %d", s.IP)
		}
		s.IP = target + 1

	case OpLoop:
		if len(s.Loops) == 0 {
			s.IP++
			break
		}
		top := s.Loops[len(s.Loops)-1]
		s.Loops = s.Loops[:len(s.Loops)-1]
		if s.Tape[s.DP] == 0 {
			s.IP++
		} else {
			// the header re-evaluates the cell and pushes again
			s.IP = top
		}

	default:
		panic(fmt.Errorf("bad operator %d at %d", uint8(op), s.IP))
	}

	s.Steps++
	return nil
}

// Run steps until the program ends or halts. A halt is yielded once as a *Halt error.
// Other errors are yielded and execution continues if yield returns true.
// Every CheckInterval steps an *Interrupt is yielded; returning false halts with HaltInterrupted.
func (v *VM) Run(yield func(*Interrupt, error) bool) {
	for !v.Done() {
		if v.MaxSteps > 0 && v.State.Steps >= v.MaxSteps {
			yield(nil, v.halt(HaltStepLimit, "%d steps executed", v.State.Steps))
			return
		}

		if err := v.Step(); err != nil {
			var halt *Halt
			if errors.As(err, &halt) {
				yield(nil, halt)
				return
			}
			if !yield(nil, err) {
				v.Interrupt(err.Error())
				return
			}
		}

		if v.CheckInterval > 0 && v.State.Steps%v.CheckInterval == 0 {
			if !yield(&Interrupt{Steps: v.State.Steps}, nil) {
				v.Interrupt("stopped by caller")
				return
			}
		}
	}
}

const defaultCheckInterval = 1 << 16

// RunContext runs to completion, halting with HaltInterrupted when ctx is done.
// Sink errors halt the machine.
func (v *VM) RunContext(ctx context.Context) *State {
	if v.CheckInterval == 0 {
		v.CheckInterval = defaultCheckInterval
	}
	if err := ctx.Err(); err != nil {
		v.Interrupt(err.Error())
		return v.State
	}
	v.Run(func(_ *Interrupt, err error) bool {
		if err != nil {
			return false
		}
		if err := ctx.Err(); err != nil {
			v.Interrupt(err.Error())
			return false
		}
		return true
	})
	return v.State
}

// Interpret executes program against input and returns the final state.
func Interpret(program Program, input []byte) *State {
	vm := NewVM(program, input)
	for range vm.Run {
	}
	return vm.State
}
