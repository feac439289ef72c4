package pure

import (
	"github.com/on-the-ground/evaluat_ive_go/eval"
)

// Lazy1 memoizes fn behind the eval core: each distinct argument maps to one
// shared memoized [eval.Eval], so fn runs only when that Eval is first
// forced, and at most once per Eval no matter how many holders force it.
// Arguments that are never forced never run fn at all.
//
// Concurrent first requests for the same argument may each receive their own
// memoized Eval before the table settles; each still runs fn at most once.
func Lazy1[I1 Arg, O any](fn func(I1) O, maxTableSize uint32) func(I1) eval.Eval[O] {
	table := NewTrie[eval.Eval[O]](maxTableSize)
	return func(i1 I1) eval.Eval[O] {
		keys := []any{tableKey(i1)}
		if ev, ok := table.Load(keys); ok {
			return ev
		}
		ev := eval.Later(func() O { return fn(i1) })
		table.Store(keys, ev)
		return ev
	}
}

// Lazy2 is Lazy1 for functions of two arguments.
func Lazy2[I1, I2 Arg, O any](fn func(I1, I2) O, maxTableSize uint32) func(I1, I2) eval.Eval[O] {
	table := NewTrie[eval.Eval[O]](maxTableSize)
	return func(i1 I1, i2 I2) eval.Eval[O] {
		keys := []any{tableKey(i1), tableKey(i2)}
		if ev, ok := table.Load(keys); ok {
			return ev
		}
		ev := eval.Later(func() O { return fn(i1, i2) })
		table.Store(keys, ev)
		return ev
	}
}
