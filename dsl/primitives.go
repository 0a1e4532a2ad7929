package dsl

import (
	"math"

	dekoda "github.com/reoring/dekoda"
)

// Type tags embedded in leaf mismatch failures. Part of the message contract.
const (
	tagString = "{string}"
	tagFloat  = "{float}"
	tagBool   = "{bool}"
	tagList   = "{list}"
)

// String returns the decoder for JSON strings.
func String() dekoda.Decoder[string] {
	return func(v dekoda.Value) dekoda.Outcome[string] {
		if s, ok := v.AsString(); ok {
			return dekoda.Succeed(s)
		}
		return dekoda.Fail[string](dekoda.CouldNotDecode(tagString))
	}
}

// Number returns the decoder for JSON numbers as float64.
func Number() dekoda.Decoder[float64] {
	return func(v dekoda.Value) dekoda.Outcome[float64] {
		if n, ok := v.AsNumber(); ok {
			return dekoda.Succeed(n)
		}
		return dekoda.Fail[float64](dekoda.CouldNotDecode(tagFloat))
	}
}

// Int returns the decoder for JSON numbers as int. It is Number post-mapped
// with a floor toward negative infinity, so 3.9 decodes to 3 and -3.1 to -4;
// a mismatch reports the {float} tag, not an integer-specific one.
func Int() dekoda.Decoder[int] {
	return dekoda.MapResult(Number(), func(n float64) int {
		return int(math.Floor(n))
	})
}

// Bool returns the decoder for JSON booleans.
func Bool() dekoda.Decoder[bool] {
	return func(v dekoda.Value) dekoda.Outcome[bool] {
		if b, ok := v.AsBool(); ok {
			return dekoda.Succeed(b)
		}
		return dekoda.Fail[bool](dekoda.CouldNotDecode(tagBool))
	}
}

// ArrayOf decodes a JSON array element-wise with elem. Elements elem fails on
// are dropped from the result rather than failing the whole array; only a
// non-array input fails, with the {list} tag. The drop semantics are part of
// the observable contract and must not be tightened.
func ArrayOf[T any](elem dekoda.Decoder[T]) dekoda.Decoder[[]T] {
	return func(v dekoda.Value) dekoda.Outcome[[]T] {
		items, ok := v.Items()
		if !ok {
			return dekoda.Fail[[]T](dekoda.CouldNotDecode(tagList))
		}
		outcomes := make([]dekoda.Outcome[T], 0, len(items))
		for _, item := range items {
			outcomes = append(outcomes, elem(item))
		}
		return dekoda.Succeed(dekoda.CollectSuccesses(outcomes))
	}
}
