package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span and engine recorded in ctx into err.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	if v := ctx.Value(SpanKey); v != nil {
		err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	}
	if index, ok := engineFrom(ctx); ok {
		err = errors.Join(err, fmt.Errorf("engine: %d", index))
	}
	return err
}
