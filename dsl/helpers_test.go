package dsl_test

import (
	dekoda "github.com/reoring/dekoda"
)

// unpack folds an Outcome into plain parts for assertions.
func unpack[T any](o dekoda.Outcome[T]) (value T, msg string, ok bool) {
	ok = dekoda.Fold(o,
		func(v T) bool { value = v; return true },
		func(m string) bool { msg = m; return false },
	)
	return value, msg, ok
}

// every JSON variant once, for totality checks
func allVariants() []dekoda.Value {
	return []dekoda.Value{
		dekoda.Null(),
		dekoda.Bool(true),
		dekoda.Number(3.5),
		dekoda.String("s"),
		dekoda.Array(dekoda.Number(1)),
		dekoda.Object(map[string]dekoda.Value{"k": dekoda.Null()}),
	}
}
