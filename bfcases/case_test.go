package bfcases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCases(t *testing.T) {
	cases, err := LoadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) < 20 {
		t.Fatalf("got %d cases", len(cases))
	}
	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			if err := c.Check(c.Run(t.Context())); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestCheckAll(t *testing.T) {
	cases, err := Load("testdata/core.yaml")
	if err != nil {
		t.Fatal(err)
	}
	outcomes := CheckAll(t.Context(), cases, 3)
	if len(outcomes) != len(cases) {
		t.Fatalf("got %d", len(outcomes))
	}
	for i, outcome := range outcomes {
		if outcome.Case.Name != cases[i].Name {
			t.Fatalf("got %s", outcome.Case.Name)
		}
		if outcome.Err != nil {
			t.Fatal(outcome.Err)
		}
	}
}

func TestCheckMismatch(t *testing.T) {
	output := "B"
	ip := 3
	c := Case{
		Name:    "mismatch",
		Program: "+.<",
		Output:  &output,
		HaltIP:  &ip,
		Cells:   map[int]uint8{0: 2},
	}
	err := c.Check(c.Run(context.Background()))
	if err == nil {
		t.Fatal("should error")
	}
	for _, expected := range []string{
		"mismatch",
		`output: expected "B", got "<??>"`,
		"halt: expected none, got bounds-underflow",
		"halt ip: expected 3, got 2",
		"cell 0: expected 2, got 1",
	} {
		if !strings.Contains(err.Error(), expected) {
			t.Fatalf("missing %q in %v", expected, err)
		}
	}
}

func TestLoadUnknownField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cases:\n  - name: x\n    program: \"+\"\n    outptu: \"\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "outptu") {
		t.Fatalf("got %v", err)
	}
}

func TestLoadBadHalt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cases:\n  - program: \"+\"\n    halt: explode\n"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "unknown halt kind: explode") {
		t.Fatalf("got %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := LoadDir(filepath.Join(t.TempDir(), "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
}
