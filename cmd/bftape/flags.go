package main

import (
	"io"
	"os"

	"github.com/reusee/bftape/cmds"
	"golang.org/x/term"
)

var (
	sourceFlag = cmds.Var[string]("-source", "program text")
	tapFlag    = cmds.Switch("-tap", "open a starlark repl on the final state")
	files      = cmds.Collect[string]("-file", "program file, may repeat")

	input    *string
	checkDir string
	checkRun string
)

func init() {
	cmds.Define("-input", cmds.Func(func(s string) {
		input = &s
	}).Desc("program input, read from stdin when absent"))

	cmds.Define("check", cmds.Func(func(dir string) {
		checkDir = dir
	}).With(map[string]*cmds.Command{
		"-run": cmds.Func(func(pattern string) {
			checkRun = pattern
		}).Desc("only cases whose name contains pattern"),
	}).Desc("run yaml cases under a directory"))

	cmds.GlobalExecutor.Positional = func(arg string) error {
		*files = append(*files, arg)
		return nil
	}
}

func getInput() []byte {
	if input != nil {
		return []byte(*input)
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	ret, err := io.ReadAll(os.Stdin)
	ce(err)
	return ret
}
