package dsl

import dekoda "github.com/reoring/dekoda"

// Fixed-arity constructors over the Struct core, for call sites that want the
// field types back without writing assertions. Higher arities go through
// Struct directly.

// Decode1 lifts one named field decoder into a decoder for T.
func Decode1[A, T any](n1 string, d1 dekoda.Decoder[A], build func(A) T) dekoda.Decoder[T] {
	fields := []namedField{{name: n1, ad: Of(d1)}}
	return structDecoder(fields, func(vs []any) T {
		return build(vs[0].(A))
	})
}

// Decode2 lifts two named field decoders into a decoder for T. Fields decode
// in argument order.
func Decode2[A, B, T any](n1 string, d1 dekoda.Decoder[A], n2 string, d2 dekoda.Decoder[B], build func(A, B) T) dekoda.Decoder[T] {
	fields := []namedField{{name: n1, ad: Of(d1)}, {name: n2, ad: Of(d2)}}
	return structDecoder(fields, func(vs []any) T {
		return build(vs[0].(A), vs[1].(B))
	})
}

// Decode3 lifts three named field decoders into a decoder for T.
func Decode3[A, B, C, T any](n1 string, d1 dekoda.Decoder[A], n2 string, d2 dekoda.Decoder[B], n3 string, d3 dekoda.Decoder[C], build func(A, B, C) T) dekoda.Decoder[T] {
	fields := []namedField{{name: n1, ad: Of(d1)}, {name: n2, ad: Of(d2)}, {name: n3, ad: Of(d3)}}
	return structDecoder(fields, func(vs []any) T {
		return build(vs[0].(A), vs[1].(B), vs[2].(C))
	})
}

// Decode4 lifts four named field decoders into a decoder for T.
func Decode4[A, B, C, D, T any](n1 string, d1 dekoda.Decoder[A], n2 string, d2 dekoda.Decoder[B], n3 string, d3 dekoda.Decoder[C], n4 string, d4 dekoda.Decoder[D], build func(A, B, C, D) T) dekoda.Decoder[T] {
	fields := []namedField{{name: n1, ad: Of(d1)}, {name: n2, ad: Of(d2)}, {name: n3, ad: Of(d3)}, {name: n4, ad: Of(d4)}}
	return structDecoder(fields, func(vs []any) T {
		return build(vs[0].(A), vs[1].(B), vs[2].(C), vs[3].(D))
	})
}
