package eval

// Raise returns a computation that panics with err when forced.
// Construction never raises: the error stays dormant until Value is called,
// and chained Map/FlatMap functions downstream of a raise are never invoked.
func Raise[A any](err error) Eval[A] {
	return Defer(func() Eval[A] { panic(err) })
}

// Attempt forces a computation, recovering a raised error into an ordinary
// (value, error) return. Only panics carrying an error are recovered — any
// other panic value propagates unchanged.
func Attempt[A any](e Eval[A]) (a A, err error) {
	defer func() {
		if r := recover(); r != nil {
			raised, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = raised
		}
	}()
	return e.Value(), nil
}
