package bfvm

import (
	"errors"
	"fmt"
)

type HaltKind uint8

const (
	HaltArithmeticOverflow HaltKind = iota + 1
	HaltArithmeticUnderflow
	HaltBoundsOverflow
	HaltBoundsUnderflow
	HaltUnterminatedLoop
	HaltStepLimit
	HaltInterrupted
)

var (
	ErrArithmeticOverflow  = errors.New("arithmetic overflow")
	ErrArithmeticUnderflow = errors.New("arithmetic underflow")
	ErrBoundsOverflow      = errors.New("bounds overflow")
	ErrBoundsUnderflow     = errors.New("bounds underflow")
	ErrUnterminatedLoop    = errors.New("unterminated loop")
	ErrStepLimit           = errors.New("step limit")
	ErrInterrupted         = errors.New("interrupted")
)

var haltErrors = [...]error{
	HaltArithmeticOverflow:  ErrArithmeticOverflow,
	HaltArithmeticUnderflow: ErrArithmeticUnderflow,
	HaltBoundsOverflow:      ErrBoundsOverflow,
	HaltBoundsUnderflow:     ErrBoundsUnderflow,
	HaltUnterminatedLoop:    ErrUnterminatedLoop,
	HaltStepLimit:           ErrStepLimit,
	HaltInterrupted:         ErrInterrupted,
}

var haltNames = [...]string{
	HaltArithmeticOverflow:  "arithmetic-overflow",
	HaltArithmeticUnderflow: "arithmetic-underflow",
	HaltBoundsOverflow:      "bounds-overflow",
	HaltBoundsUnderflow:     "bounds-underflow",
	HaltUnterminatedLoop:    "unterminated-loop",
	HaltStepLimit:           "step-limit",
	HaltInterrupted:         "interrupted",
}

func (k HaltKind) valid() bool {
	return k >= HaltArithmeticOverflow && k <= HaltInterrupted
}

func (k HaltKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("halt-kind(%d)", uint8(k))
	}
	return haltNames[k]
}

// ParseHaltKind is the inverse of HaltKind.String.
func ParseHaltKind(s string) (HaltKind, error) {
	for k := HaltArithmeticOverflow; k <= HaltInterrupted; k++ {
		if haltNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown halt kind: %s", s)
}

// Halt describes an abnormal stop. IP and DP are the pointers at the violating operator.
type Halt struct {
	Kind    HaltKind
	IP      int
	DP      int
	Message string
}

var _ error = new(Halt)

func (h *Halt) Error() string {
	return h.Kind.String() + ": " + h.Message
}

func (h *Halt) Unwrap() error {
	if !h.Kind.valid() {
		return nil
	}
	return haltErrors[h.Kind]
}
