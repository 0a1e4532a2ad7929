package dekoda

// Package dekoda turns untyped, dynamically-shaped JSON into statically-typed
// values, reporting failures as plain values instead of panics or errors.
//
// - Outcome[T] is the single success/failure representation (Succeed/Fail/Fold)
// - Process[A,B] is a pure stage from A to Outcome[B]; Decoder[T] is a Process
//   whose input is a JSON Value
// - Navigate/At walk a property path through nested objects before decoding
// - ParseText/ParseBytes wrap a pluggable parser Driver (goccy/go-json by
//   default) so malformed input becomes a failed Outcome
//
// Design policy:
// - Keep only the public core in the root package; put the decoder DSL under
//   dsl/, alternate input drivers under source/, and the CLI under cmd/dekoda.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	person := dsl.Decode2("name", dsl.String(), "age", dsl.Int(), NewPerson)
//	out := dekoda.RunThrough(person, dekoda.ParseText(text))
//	msg := dekoda.Fold(out, renderPerson, func(m string) string { return m })
