package eval

import (
	"github.com/on-the-ground/evaluat_ive_go/shared/helper"
)

// FlatMap sequences two computations: once e produces a value, f chooses the
// computation that follows. Nothing runs at call time — FlatMap only
// allocates a chain link, even when e is an already-computed Now.
//
// FlatMap is a package function rather than a method because the result type
// B is independent of A, and Go methods cannot introduce type parameters.
func FlatMap[A, B any](e Eval[A], f func(A) Eval[B]) Eval[B] {
	k := func(v erased) node { return f(helper.As[A](v)).n }
	return Eval[B]{n: chain(e.n, k)}
}

// Map applies a pure function to the result of a computation.
// Defined as FlatMap into Now, so it shares the chain node shape and the
// trampoline's stack-safety guarantees.
func Map[A, B any](e Eval[A], f func(A) B) Eval[B] {
	return FlatMap(e, func(a A) Eval[B] { return Now(f(a)) })
}

// chain builds the link for receiver >>= k. The shape depends on the
// receiver:
//
//   - chain link: re-associate. The new link keeps the old start, and its
//     continuation re-wraps the old continuation's result behind a start
//     thunk, so the trampoline peels one layer per iteration instead of
//     rebuilding the nested chain in one recursive burst. This bounds the
//     work per step to a constant no matter how the chain was nested.
//   - redirect: the redirect's thunk becomes the start directly — "run the
//     thunk to get the next computation, then continue with k".
//   - leaf: the receiver itself is the start.
func chain(receiver node, k func(erased) node) node {
	switch r := receiver.(type) {
	case *chainNode:
		return &chainNode{
			start: r.start,
			k: func(s erased) node {
				return &chainNode{
					start: func() node { return r.k(s) },
					k:     k,
				}
			},
		}
	case *deferNode:
		return &chainNode{start: r.thunk, k: k}
	default:
		return &chainNode{start: func() node { return receiver }, k: k}
	}
}
