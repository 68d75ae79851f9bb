package logs

import "github.com/reusee/dscope"

type Module struct {
	dscope.Module
}

// Span identifies one program run across log records and errors.
type Span string

type spanKey struct{}

var SpanKey spanKey
