package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span of ctx to err, keeping err matchable with errors.Is and errors.As.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}

// SpanOf returns the span of ctx, or an empty span.
func SpanOf(ctx context.Context) Span {
	if v, ok := ctx.Value(SpanKey).(Span); ok {
		return v
	}
	return ""
}
