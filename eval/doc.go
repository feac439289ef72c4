// Package eval provides a deferred computation value for Go.
//
// An [Eval] represents a value of type A, or a computation that will produce
// one, under one of three evaluation strategies:
//
//   - [Now]: the value is already computed.
//   - [Later]: the thunk runs on first forcing, then the result is cached.
//   - [Always]: the thunk reruns on every forcing.
//
// Computations compose with [Map] and [FlatMap] without running anything;
// forcing happens only when [Eval.Value] is called. Forcing is driven by an
// iterative trampoline with an explicit continuation work list, so a chain of
// any length — millions of FlatMap links, or arbitrarily deep [Defer]
// recursion — evaluates in constant native stack.
//
// # Why not just closures?
//
// Composing thunks with nested closures makes each Value call one native
// frame deeper per chain link, and long chains blow the stack. eval instead
// defunctionalizes the chain into explicit nodes and walks them in a loop,
// the same way an effect runtime walks its continuation frames.
//
// # Errors
//
// Thunks signal failure by panicking, typically with an error built by the
// caller; [Raise] constructs a computation that panics with a given error
// when forced, and [Attempt] forces a computation while recovering a raised
// error into an ordinary (value, error) return. The trampoline itself never
// catches: a panic inside a thunk or continuation propagates out of Value
// unchanged.
//
// # Concurrency
//
// An Eval is immutable after construction except for the memo cell inside a
// Later value. Forcing the same memoized Eval from several goroutines runs
// the thunk at most once; every caller observes the same result. No other
// synchronization is provided or required.
package eval
