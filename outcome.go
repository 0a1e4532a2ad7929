package dekoda

// Outcome is the single result representation used throughout dekoda: either a
// success carrying a typed payload or a failure carrying a human-readable
// message. Exactly one of the two holds; a failure message is never empty.
//
// Outcomes are immutable values. The only way to inspect one is Fold; no
// partial unwrap is exported, so consumers stay total by construction.
type Outcome[T any] struct {
	ok    bool
	value T
	msg   string
}

// Succeed wraps a value in the success variant.
func Succeed[T any](v T) Outcome[T] {
	return Outcome[T]{ok: true, value: v}
}

// Fail wraps a message in the failure variant.
func Fail[T any](msg string) Outcome[T] {
	return Outcome[T]{ok: false, msg: msg}
}

// Fold applies onSuccess to the payload of a success, or onFailure to the
// message of a failure. It is the sole public deconstruction of an Outcome.
func Fold[T, R any](o Outcome[T], onSuccess func(T) R, onFailure func(string) R) R {
	if o.ok {
		return onSuccess(o.value)
	}
	return onFailure(o.msg)
}

// CollectSuccesses walks the outcomes in input order and returns the payloads
// of the successes. Failures are dropped silently rather than aborting the
// walk; ArrayOf relies on this to tolerate malformed elements.
func CollectSuccesses[T any](outcomes []Outcome[T]) []T {
	collected := make([]T, 0, len(outcomes))
	for _, o := range outcomes {
		if o.ok {
			collected = append(collected, o.value)
		}
	}
	return collected
}

// FromOptional lifts a comma-ok pair into an Outcome. An absent value becomes
// the fixed failure "Nothing"; callers that need richer diagnostics should
// construct the failure themselves via Fail.
func FromOptional[T any](v T, ok bool) Outcome[T] {
	if !ok {
		return Fail[T](msgNothing)
	}
	return Succeed(v)
}
