package dsl

import dekoda "github.com/reoring/dekoda"

// AnyAdapter erases a typed decoder to a decoder of any so heterogeneous
// fields can share one builder. The typed payload survives inside the any and
// is recovered by the assemble function (or a type assertion in the
// fixed-arity helpers).
type AnyAdapter struct {
	dec dekoda.Decoder[any]
}

// Of wraps a typed decoder in an AnyAdapter.
func Of[T any](d dekoda.Decoder[T]) AnyAdapter {
	return AnyAdapter{dec: dekoda.MapResult(d, func(v T) any { return v })}
}

// fieldResult is the internal Fold target used to thread a field outcome
// through the builder without an unchecked unwrap.
type fieldResult struct {
	value any
	msg   string
	ok    bool
}

func runField(ad AnyAdapter, name string, root dekoda.Value) fieldResult {
	o := dekoda.RunThrough(ad.dec, dekoda.Navigate([]string{name}, root))
	return dekoda.Fold(o,
		func(v any) fieldResult { return fieldResult{value: v, ok: true} },
		func(m string) fieldResult { return fieldResult{msg: m} },
	)
}
