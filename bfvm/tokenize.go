package bfvm

import "strings"

type Program []Operator

var opTable = func() (ret [256]Operator) {
	for op := OpIncCell; op <= OpLoop; op++ {
		ret[op.Symbol()] = op
	}
	return
}()

// Tokenize maps source text to operators. Unrecognized characters are comments.
func Tokenize(source string) Program {
	program := make(Program, 0, len(source))
	for i := 0; i < len(source); i++ {
		if op := opTable[source[i]]; op != 0 {
			program = append(program, op)
		}
	}
	return program
}

func (p Program) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, op := range p {
		b.WriteByte(op.Symbol())
	}
	return b.String()
}
