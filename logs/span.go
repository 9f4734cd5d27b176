package logs

import "context"

type Span string

type spanKey struct{}

var SpanKey spanKey

type engineKey struct{}

// WithEngine tags ctx with the index of the machine whose events are being logged.
func WithEngine(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, engineKey{}, index)
}

func engineFrom(ctx context.Context) (int, bool) {
	index, ok := ctx.Value(engineKey{}).(int)
	return index, ok
}
