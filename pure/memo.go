package pure

// Memo1 memoizes a pure function of one argument over a bounded table.
func Memo1[I1 Arg, O any](fn func(I1) O, maxTableSize uint32) func(I1) O {
	memoized := memoize(
		func(args ...Arg) O {
			return fn(args[0].(I1))
		},
		maxTableSize,
	)
	return func(i1 I1) O {
		return memoized(i1)
	}
}

// Memo2 memoizes a pure function of two arguments over a bounded table.
func Memo2[I1, I2 Arg, O any](fn func(I1, I2) O, maxTableSize uint32) func(I1, I2) O {
	memoized := memoize(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) O {
		return memoized(i1, i2)
	}
}

// Memo3 memoizes a pure function of three arguments over a bounded table.
func Memo3[I1, I2, I3 Arg, O any](fn func(I1, I2, I3) O, maxTableSize uint32) func(I1, I2, I3) O {
	memoized := memoize(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3) O {
		return memoized(i1, i2, i3)
	}
}

// Memo4 memoizes a pure function of four arguments over a bounded table.
func Memo4[I1, I2, I3, I4 Arg, O any](fn func(I1, I2, I3, I4) O, maxTableSize uint32) func(I1, I2, I3, I4) O {
	memoized := memoize(
		func(args ...Arg) O {
			return fn(args[0].(I1), args[1].(I2), args[2].(I3), args[3].(I4))
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2, i3 I3, i4 I4) O {
		return memoized(i1, i2, i3, i4)
	}
}

// outcome packs a dual (value, error) return into one table entry.
type outcome[O any] struct {
	value O
	err   error
}

// Memo1E memoizes a one-argument function returning (value, error).
// The error is cached alongside the value, so a failing call is not retried.
func Memo1E[I1 Arg, O any](fn func(I1) (O, error), maxTableSize uint32) func(I1) (O, error) {
	memoized := Memo1(
		func(i1 I1) outcome[O] {
			v, err := fn(i1)
			return outcome[O]{value: v, err: err}
		},
		maxTableSize,
	)
	return func(i1 I1) (O, error) {
		out := memoized(i1)
		return out.value, out.err
	}
}

// Memo2E memoizes a two-argument function returning (value, error).
func Memo2E[I1, I2 Arg, O any](fn func(I1, I2) (O, error), maxTableSize uint32) func(I1, I2) (O, error) {
	memoized := Memo2(
		func(i1 I1, i2 I2) outcome[O] {
			v, err := fn(i1, i2)
			return outcome[O]{value: v, err: err}
		},
		maxTableSize,
	)
	return func(i1 I1, i2 I2) (O, error) {
		out := memoized(i1, i2)
		return out.value, out.err
	}
}

// memoize is the variadic erased core shared by the Memo combinators.
// First call per key path runs fn and stores the result; concurrent first
// calls may each run fn, with the last store winning.
func memoize[O any](fn func(...Arg) O, maxTableSize uint32) func(...Arg) O {
	table := NewTrie[O](maxTableSize)
	return func(args ...Arg) O {
		keys := make([]any, len(args))
		for i, a := range args {
			keys[i] = tableKey(a)
		}
		if v, ok := table.Load(keys); ok {
			return v
		}
		v := fn(args...)
		table.Store(keys, v)
		return v
	}
}
