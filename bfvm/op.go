package bfvm

type Operator uint8

const (
	OpIncCell Operator = iota + 1
	OpDecCell
	OpIncPtr
	OpDecPtr
	OpPrint
	OpRead
	OpJumpZero
	OpLoop
)

var opSymbols = [...]byte{
	OpIncCell:  '+',
	OpDecCell:  '-',
	OpIncPtr:   '>',
	OpDecPtr:   '<',
	OpPrint:    '.',
	OpRead:     ',',
	OpJumpZero: '[',
	OpLoop:     ']',
}

var opNames = [...]string{
	OpIncCell:  "IncCell",
	OpDecCell:  "DecCell",
	OpIncPtr:   "IncPtr",
	OpDecPtr:   "DecPtr",
	OpPrint:    "Print",
	OpRead:     "Read",
	OpJumpZero: "JumpZero",
	OpLoop:     "Loop",
}

func (o Operator) Valid() bool {
	return o >= OpIncCell && o <= OpLoop
}

// Symbol returns the source character of the operator, or 0 for invalid values.
func (o Operator) Symbol() byte {
	if !o.Valid() {
		return 0
	}
	return opSymbols[o]
}

func (o Operator) String() string {
	if !o.Valid() {
		return "Invalid"
	}
	return opNames[o]
}
