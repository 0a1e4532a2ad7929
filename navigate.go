package dekoda

// Navigate walks an ordered property path through nested objects starting at
// root. Each segment requires the current value to be an object holding that
// key with a non-null value; otherwise navigation fails immediately with
// "Could not decode: '<segment>'" and no further segments are examined. An
// empty path succeeds with the root unchanged. The input tree is never
// mutated.
func Navigate(path []string, root Value) Outcome[Value] {
	current := root
	for _, segment := range path {
		next, ok := current.Member(segment)
		if !ok || next.Kind() == KindNull {
			return Fail[Value](CouldNotDecode(segment))
		}
		current = next
	}
	return Succeed(current)
}

// At is the stage form of Navigate, for composing path lookup in front of a
// decoder with Sequence.
func At(path ...string) Process[Value, Value] {
	return func(root Value) Outcome[Value] {
		return Navigate(path, root)
	}
}
