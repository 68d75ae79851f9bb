package bfrun

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reusee/bftape/bfconfigs"
	"github.com/reusee/bftape/bfvm"
	"github.com/reusee/dscope"
)

func TestBatch(t *testing.T) {
	newScope(t,
		dscope.Provide(bfconfigs.Parallelism(4)),
	).Call(func(
		batch Batch,
	) {
		var sources []Source
		for i := range 32 {
			sources = append(sources, Source{
				Name:    fmt.Sprintf("prog%d", i),
				Program: strings.Repeat("+", 33+i) + ".",
			})
		}
		sources = append(sources, Source{
			Name:    "bad",
			Program: "[",
		})

		results := batch(t.Context(), sources)
		if len(results) != len(sources) {
			t.Fatalf("got %d", len(results))
		}
		for i, result := range results[:32] {
			if result.Err != nil {
				t.Fatal(result.Err)
			}
			if result.Source.Name != sources[i].Name {
				t.Fatalf("got %s", result.Source.Name)
			}
			if result.State.Output[0] != byte(33+i) {
				t.Fatalf("got %v", result.State.Output)
			}
		}
		if err := results[32].Err; !errors.Is(err, bfvm.ErrUnterminatedLoop) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestBatchCanceled(t *testing.T) {
	newScope(t,
		dscope.Provide(bfconfigs.Parallelism(1)),
	).Call(func(
		batch Batch,
	) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		results := batch(ctx, []Source{
			{Program: "+[]"},
			{Program: "+[]"},
		})
		for _, result := range results {
			if result.Err == nil {
				t.Fatal("should error")
			}
		}
	})
}
