package dekoda

// Process is a pure, total stage: given an A it produces an Outcome[B]. Stages
// hold no state and have no side effects, so they are freely shareable and
// safe for concurrent use. Composition is the only relationship between
// stages; there is no hierarchy.
type Process[A, B any] func(A) Outcome[B]

// Decoder is a Process whose input is a JSON Value. Leaf decoders and the
// struct combinators live in the dsl package.
type Decoder[T any] = Process[Value, T]

// RunThrough feeds a prior Outcome into a stage. A failure passes through
// untouched without invoking the stage; this short-circuit is the sole
// propagation rule in dekoda, so the first failure always wins.
func RunThrough[A, B any](p Process[A, B], o Outcome[A]) Outcome[B] {
	if !o.ok {
		return Fail[B](o.msg)
	}
	return p(o.value)
}

// Sequence composes two stages into one. Associative: regrouping a chain of
// Sequence calls never changes the Outcome.
func Sequence[A, B, C any](ab Process[A, B], bc Process[B, C]) Process[A, C] {
	return func(a A) Outcome[C] {
		return RunThrough(bc, ab(a))
	}
}

// MapResult post-processes a successful payload with a total, non-failing
// transform. Failures pass through untouched.
func MapResult[A, B, C any](p Process[A, B], fn func(B) C) Process[A, C] {
	return func(a A) Outcome[C] {
		o := p(a)
		if !o.ok {
			return Fail[C](o.msg)
		}
		return Succeed(fn(o.value))
	}
}

// ReduceSequential folds the stages left-to-right over the running Outcome
// using RunThrough. After the first failure the remaining stages only see
// short-circuited failures, so no further work occurs.
func ReduceSequential[T any](initial Outcome[T], stages []Process[T, T]) Outcome[T] {
	acc := initial
	for _, stage := range stages {
		acc = RunThrough(stage, acc)
	}
	return acc
}

// FirstOf tries the first stage and, only if it failed, tries the second on
// the original input. A success from the first stage is returned untouched.
func FirstOf[A, B any](a, b Process[A, B]) Process[A, B] {
	return func(in A) Outcome[B] {
		o := a(in)
		if o.ok {
			return o
		}
		return b(in)
	}
}

// Pair carries the two payloads produced by PairOf.
type Pair[B, C any] struct {
	First  B
	Second C
}

// PairOf runs both stages on the same input and succeeds with the pair of both
// results only if both succeed. The first stage is evaluated before the
// second, and the first failure encountered is the one reported.
func PairOf[A, B, C any](ab Process[A, B], ac Process[A, C]) Process[A, Pair[B, C]] {
	return func(a A) Outcome[Pair[B, C]] {
		ob := ab(a)
		if !ob.ok {
			return Fail[Pair[B, C]](ob.msg)
		}
		oc := ac(a)
		if !oc.ok {
			return Fail[Pair[B, C]](oc.msg)
		}
		return Succeed(Pair[B, C]{First: ob.value, Second: oc.value})
	}
}
