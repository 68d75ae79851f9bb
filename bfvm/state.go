package bfvm

import (
	"unicode"
	"unicode/utf8"
)

const TapeSize = 30000

// Placeholder replaces output bytes that have no displayable code point.
const Placeholder = "<??>"

type Tape [TapeSize]uint8

type State struct {
	IP       int
	DP       int
	InputPos int
	Steps    int
	Loops    []int
	Output   []byte
	Halt     *Halt
	Tape     Tape
}

func newState() *State {
	return &State{
		Loops: make([]int, 0, 16),
	}
}

func (s *State) Halted() bool {
	return s.Halt != nil
}

// Err returns the halt descriptor as an error, or nil on normal termination.
func (s *State) Err() error {
	if s.Halt == nil {
		return nil
	}
	return s.Halt
}

func (s *State) Cell() uint8 {
	return s.Tape[s.DP]
}

// Window returns a copy of tape cells in [from, to), clamped to the tape.
func (s *State) Window(from, to int) []uint8 {
	from = max(from, 0)
	to = min(to, TapeSize)
	if from >= to {
		return nil
	}
	ret := make([]uint8, to-from)
	copy(ret, s.Tape[from:to])
	return ret
}

func (s *State) Text() string {
	return string(AppendText(nil, s.Output, Placeholder))
}

// Displayable reports whether b, read as a Latin-1 code point, renders as text.
func Displayable(b byte) bool {
	r := rune(b)
	switch r {
	case '\n', '\r', '\t':
		return true
	}
	return unicode.IsPrint(r)
}

func AppendText(dst []byte, output []byte, placeholder string) []byte {
	for _, b := range output {
		if !Displayable(b) {
			dst = append(dst, placeholder...)
			continue
		}
		dst = utf8.AppendRune(dst, rune(b))
	}
	return dst
}
