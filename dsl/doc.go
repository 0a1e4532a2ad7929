// Package dsl provides the decoder vocabulary for dekoda: leaf decoders for
// the primitive JSON variants, ArrayOf for element-wise decoding, and the
// Struct builder that assembles named field decoders into a decoder for a
// composite value.
//
// Decoders are plain dekoda.Process values specialised to a JSON Value input.
// They are stateless and freely reusable; building one never touches the
// input, and running one never mutates it.
package dsl
