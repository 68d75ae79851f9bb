package debugs

import (
	"github.com/reusee/bftape/bfvm"
)

// StateGlobals exposes a final machine state for post-mortem inspection.
func StateGlobals(program bfvm.Program, state *bfvm.State) map[string]any {
	tape := make([]int, len(state.Tape))
	for i, c := range state.Tape {
		tape[i] = int(c)
	}
	globals := map[string]any{
		"program":   program.String(),
		"ip":        state.IP,
		"dp":        state.DP,
		"steps":     state.Steps,
		"input_pos": state.InputPos,
		"loops":     state.Loops,
		"output":    state.Text(),
		"raw":       state.Output,
		"tape":      tape,
		"cell":      int(state.Cell()),
		"halt":      nil,
		"window": func(from, to int) []int {
			var ret []int
			for _, c := range state.Window(from, to) {
				ret = append(ret, int(c))
			}
			return ret
		},
	}
	if state.Halt != nil {
		globals["halt"] = map[string]any{
			"kind":    state.Halt.Kind.String(),
			"message": state.Halt.Message,
			"ip":      state.Halt.IP,
			"dp":      state.Halt.DP,
		}
	}
	if state.IP < len(program) {
		globals["op"] = program[state.IP].String()
	}
	return globals
}
