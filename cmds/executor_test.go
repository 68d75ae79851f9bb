package cmds

import (
	"fmt"
	"strings"
	"testing"
)

func TestExecutor(t *testing.T) {
	executor := NewExecutor()

	var steps int
	executor.Define("-unlimited", Func(func() {
		steps = -1
	}))
	executor.Define("-max-steps", Func(func(i int) {
		steps = i
	}))

	if err := executor.Execute([]string{
		"-unlimited",
	}); err != nil {
		t.Fatal(err)
	}
	if steps != -1 {
		t.Fatalf("got %d", steps)
	}

	if err := executor.Execute([]string{
		"-max-steps", "1000",
	}); err != nil {
		t.Fatal(err)
	}
	if steps != 1000 {
		t.Fatalf("got %d", steps)
	}

	err := executor.Execute([]string{
		"foo",
	})
	if !strings.Contains(err.Error(), "unknown command: foo") {
		t.Fatalf("got %v", err)
	}

}

func TestSubCommands(t *testing.T) {
	executor := NewExecutor()
	var wrap bool
	var parallel int
	executor.Define("check", new(Command).With(map[string]*Command{
		"-wrap": Func(func() {
			wrap = true
		}),
		"-parallel": Func(func(i int) {
			parallel = i
		}),
	}))

	if err := executor.Execute([]string{
		"check",
		"-wrap",
		"-parallel", "4",
	}); err != nil {
		t.Fatal(err)
	}

	if !wrap {
		t.Fatal()
	}
	if parallel != 4 {
		t.Fatalf("got %d", parallel)
	}

	err := executor.Execute([]string{"-wrap"})
	if err == nil || err.Error() != "unknown command: -wrap" {
		t.Fatalf("got %v", err)
	}

}

func TestDuplicatedSubCommand(t *testing.T) {
	executor := NewExecutor()
	executor.Define("foo", new(Command).With(map[string]*Command{
		"a": nil,
	}))
	executor.Define("bar", new(Command).With(map[string]*Command{
		"a": nil,
	}))
	err := executor.Execute([]string{"foo", "bar"})
	if !strings.Contains(err.Error(), "duplicated sub command: bar a") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	executor := NewExecutor()
	var n int
	var s string
	executor.Define("foo", Func(func(arg *int, arg2 *string) {
		n = *arg
		s = *arg2
	}))

	err := executor.Execute([]string{"foo", "42", "foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 {
		t.Fatal()
	}
	if s != "foo" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo", "99"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 99 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

	err = executor.Execute([]string{"foo"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal()
	}
	if s != "" {
		t.Fatal()
	}

}

func TestPositional(t *testing.T) {
	executor := NewExecutor()
	var verbose int
	executor.Define("-v", Func(func(i int) {
		verbose = i
	}))
	var files []string
	executor.Positional = func(arg string) error {
		files = append(files, arg)
		return nil
	}
	if err := executor.Execute([]string{
		"hello.bf", "-v", "2", "cat.bf",
	}); err != nil {
		t.Fatal(err)
	}
	if verbose != 2 {
		t.Fatalf("got %v", verbose)
	}
	if str := strings.Join(files, ","); str != "hello.bf,cat.bf" {
		t.Fatalf("got %s", str)
	}

	err := executor.Execute([]string{"-x"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -x") {
		t.Fatalf("got %v", err)
	}
}

type policy string

func (p *policy) UnmarshalText(text []byte) error {
	switch string(text) {
	case "checked", "wrap":
		*p = policy(text)
		return nil
	}
	return fmt.Errorf("bad policy %s", text)
}

func TestTextUnmarshaler(t *testing.T) {
	executor := NewExecutor()
	var got policy
	var ptr *policy
	executor.Define("-policy", Func(func(p policy) {
		got = p
	}))
	executor.Define("-maybe", Func(func(p *policy) {
		ptr = p
	}))

	if err := executor.Execute([]string{"-policy", "wrap", "-maybe", "checked"}); err != nil {
		t.Fatal(err)
	}
	if got != "wrap" {
		t.Fatalf("got %v", got)
	}
	if ptr == nil || *ptr != "checked" {
		t.Fatalf("got %v", ptr)
	}

	err := executor.Execute([]string{"-policy", "saturate"})
	if err == nil || err.Error() != "-policy: bad policy saturate" {
		t.Fatalf("got %v", err)
	}
}

func TestArgumentError(t *testing.T) {
	executor := NewExecutor()
	executor.Define("-max-steps", Func(func(int8) {}))
	err := executor.Execute([]string{"-max-steps", "300"})
	if err == nil || !strings.HasPrefix(err.Error(), "-max-steps: convert 300 to int") {
		t.Fatalf("got %v", err)
	}
	err = executor.Execute([]string{"-max-steps"})
	if err == nil || err.Error() != "-max-steps: expecting argument, got nothing" {
		t.Fatalf("got %v", err)
	}
}

func TestFuncWithSubs(t *testing.T) {
	executor := NewExecutor()
	var dir, run string
	executor.Define("check", Func(func(d string) {
		dir = d
	}).With(map[string]*Command{
		"-run": Func(func(pattern string) {
			run = pattern
		}),
	}))

	if err := executor.Execute([]string{
		"check", "cases", "-run", "loop",
	}); err != nil {
		t.Fatal(err)
	}
	if dir != "cases" || run != "loop" {
		t.Fatalf("got %s %s", dir, run)
	}

	err := executor.Execute([]string{"-run", "loop"})
	if err == nil || err.Error() != "unknown command: -run" {
		t.Fatalf("got %v", err)
	}
}
