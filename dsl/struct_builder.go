package dsl

import (
	"fmt"

	dekoda "github.com/reoring/dekoda"
)

type namedField struct {
	name string
	ad   AnyAdapter
}

// StructBuilder accumulates named field decoders in declaration order and
// lifts them into a decoder for a composite value. Field count is unbounded;
// the Decode1..Decode4 helpers are a typed convenience over the same core.
type StructBuilder[T any] struct {
	fields []namedField
}

// Struct creates a new builder for a composite of type T.
func Struct[T any]() *StructBuilder[T] {
	return &StructBuilder[T]{}
}

// Field registers a field by property name. Declaration order is decode order.
func (b *StructBuilder[T]) Field(name string, ad AnyAdapter) *StructBuilder[T] {
	b.fields = append(b.fields, namedField{name: name, ad: ad})
	return b
}

// Build validates the registered fields and returns the composite decoder.
// assemble receives the field payloads in declaration order once every field
// has decoded successfully.
func (b *StructBuilder[T]) Build(assemble func(values []any) T) (dekoda.Decoder[T], error) {
	seen := make(map[string]struct{}, len(b.fields))
	for _, f := range b.fields {
		if f.name == "" {
			return nil, fmt.Errorf("dsl: field name must not be empty")
		}
		if _, dup := seen[f.name]; dup {
			return nil, fmt.Errorf("dsl: duplicate field name %q", f.name)
		}
		seen[f.name] = struct{}{}
	}
	if assemble == nil {
		return nil, fmt.Errorf("dsl: assemble function must not be nil")
	}
	fields := make([]namedField, len(b.fields))
	copy(fields, b.fields)
	return structDecoder(fields, assemble), nil
}

// MustBuild is like Build but panics on error.
func (b *StructBuilder[T]) MustBuild(assemble func(values []any) T) dekoda.Decoder[T] {
	d, err := b.Build(assemble)
	if err != nil {
		panic(err)
	}
	return d
}

// structDecoder carries the decode semantics shared by Build and the
// fixed-arity helpers: for each field in order, a single-segment Navigate to
// the property followed by the field decoder, aborting the whole decode on the
// first failure. Later fields are not evaluated after a failure.
func structDecoder[T any](fields []namedField, assemble func(values []any) T) dekoda.Decoder[T] {
	return func(root dekoda.Value) dekoda.Outcome[T] {
		values := make([]any, 0, len(fields))
		for _, f := range fields {
			res := runField(f.ad, f.name, root)
			if !res.ok {
				return dekoda.Fail[T](res.msg)
			}
			values = append(values, res.value)
		}
		return dekoda.Succeed(assemble(values))
	}
}
