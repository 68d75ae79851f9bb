package bfrun

import (
	"fmt"
	"os"
)

// SourceFile reads a program from path.
func SourceFile(path string, input []byte) (Source, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("read program: %w", err)
	}
	return Source{
		Name:    path,
		Program: string(content),
		Input:   input,
	}, nil
}
