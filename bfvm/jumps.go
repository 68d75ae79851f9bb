package bfvm

import "fmt"

// Jumps maps every bracket position to its matching bracket position.
// Non-bracket positions hold -1.
type Jumps []int

func (p Program) Jumps() (Jumps, error) {
	jumps := make(Jumps, len(p))
	var open []int
	for i, op := range p {
		jumps[i] = -1
		switch op {
		case OpJumpZero:
			open = append(open, i)
		case OpLoop:
			if len(open) == 0 {
				// unmatched close is tolerated at run time
				continue
			}
			start := open[len(open)-1]
			open = open[:len(open)-1]
			jumps[start] = i
			jumps[i] = start
		}
	}
	if len(open) > 0 {
		return jumps, fmt.Errorf("unmatched [ at %d", open[len(open)-1])
	}
	return jumps, nil
}

// scanForward finds the Loop matching the JumpZero at ip, or -1.
func (p Program) scanForward(ip int) int {
	depth := 0
	for i := ip; i < len(p); i++ {
		switch p[i] {
		case OpJumpZero:
			depth++
		case OpLoop:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
