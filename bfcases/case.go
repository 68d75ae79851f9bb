package bfcases

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/bftape/vars"
	"gopkg.in/yaml.v3"
)

// Case is one expected run of a program.
// Absent expectations are not checked.
type Case struct {
	Name      string        `yaml:"name"`
	Program   string        `yaml:"program"`
	Repeat    int           `yaml:"repeat,omitempty"`
	Input     string        `yaml:"input,omitempty"`
	Wrap      bool          `yaml:"wrap,omitempty"`
	MaxSteps  int           `yaml:"max_steps,omitempty"`
	JumpTable bool          `yaml:"jump_table,omitempty"`
	Output    *string       `yaml:"output,omitempty"`
	Halt      string        `yaml:"halt,omitempty"`
	HaltIP    *int          `yaml:"halt_ip,omitempty"`
	DP        *int          `yaml:"dp,omitempty"`
	Steps     *int          `yaml:"steps,omitempty"`
	Cells     map[int]uint8 `yaml:"cells,omitempty"`

	Path string `yaml:"-"`
}

type caseFile struct {
	Cases []Case `yaml:"cases"`
}

func Load(path string) ([]Case, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var f caseFile
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil {
		return nil, fmt.Errorf("cases: parse %s: %w", path, err)
	}
	for i := range f.Cases {
		f.Cases[i].Path = path
		if f.Cases[i].Name == "" {
			f.Cases[i].Name = fmt.Sprintf("case%d", i)
		}
		if f.Cases[i].Halt != "" {
			if _, err := bfvm.ParseHaltKind(f.Cases[i].Halt); err != nil {
				return nil, fmt.Errorf("cases: %s: %s: %w", path, f.Cases[i].Name, err)
			}
		}
	}
	return f.Cases, nil
}

// LoadDir loads every .yaml and .yml file under dir in lexical order.
func LoadDir(dir string) ([]Case, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.Type().IsRegular() {
			switch filepath.Ext(path) {
			case ".yaml", ".yml":
				paths = append(paths, path)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(paths)

	var ret []Case
	for _, path := range paths {
		cases, err := Load(path)
		if err != nil {
			return nil, err
		}
		ret = append(ret, cases...)
	}
	return ret, nil
}

func (c Case) Source() string {
	if c.Repeat > 1 {
		return strings.Repeat(c.Program, c.Repeat)
	}
	return c.Program
}

func (c Case) VM() *bfvm.VM {
	vm := bfvm.NewVM(bfvm.Tokenize(c.Source()), []byte(c.Input))
	if c.Wrap {
		vm.CellPolicy = bfvm.CellWrap
	}
	vm.MaxSteps = c.MaxSteps
	if c.JumpTable {
		vm.UseJumpTable()
	}
	return vm
}

func (c Case) Run(ctx context.Context) *bfvm.State {
	return c.VM().RunContext(ctx)
}

// Check compares state against the expectations, joining every mismatch.
func (c Case) Check(state *bfvm.State) error {
	var errs []error
	mismatch := func(what string, expected, got any) {
		errs = append(errs, fmt.Errorf("%s: expected %v, got %v", what, expected, got))
	}

	if c.Output != nil && state.Text() != *c.Output {
		mismatch("output", fmt.Sprintf("%q", *c.Output), fmt.Sprintf("%q", state.Text()))
	}

	var gotHalt string
	if state.Halt != nil {
		gotHalt = state.Halt.Kind.String()
	}
	if gotHalt != c.Halt {
		mismatch("halt", vars.FirstNonZero(c.Halt, "none"), vars.FirstNonZero(gotHalt, "none"))
	}
	if c.HaltIP != nil && state.Halt != nil && state.Halt.IP != *c.HaltIP {
		mismatch("halt ip", *c.HaltIP, state.Halt.IP)
	}

	if c.DP != nil && state.DP != *c.DP {
		mismatch("dp", *c.DP, state.DP)
	}
	if c.Steps != nil && state.Steps != *c.Steps {
		mismatch("steps", *c.Steps, state.Steps)
	}
	for _, i := range slices.Sorted(maps.Keys(c.Cells)) {
		if i < 0 || i >= bfvm.TapeSize {
			mismatch(fmt.Sprintf("cell %d", i), "index in tape", "out of range")
			continue
		}
		if state.Tape[i] != c.Cells[i] {
			mismatch(fmt.Sprintf("cell %d", i), c.Cells[i], state.Tape[i])
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s (%s): %w", c.Name, c.Path, err)
	}
	return nil
}
