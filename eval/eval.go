package eval

import (
	"sync"

	"github.com/on-the-ground/evaluat_ive_go/shared/helper"
)

// erased is the type-erased value plane the trampoline operates on.
// Concrete result types are only known at construction sites; constructors
// and FlatMap erase them behind closures, and Value recovers the final type
// at the single exit point.
type erased = any

// node is the closed internal representation of a computation. Exactly five
// variants exist: nowNode, laterNode, alwaysNode, deferNode, chainNode.
// The trampoline dispatches on the concrete type, never on open-ended
// dynamic behavior.
type node interface {
	node()
}

// nowNode holds an already-computed value.
type nowNode struct{ v erased }

// laterNode runs its thunk on first forcing and caches the result.
// The memo cell transitions at most once from empty to filled; the thunk
// reference is dropped once the cell fills so captured state can be released.
type laterNode struct {
	mu    sync.Mutex
	thunk func() erased
	v     erased
	done  bool
}

// alwaysNode reruns its thunk on every forcing.
type alwaysNode struct{ thunk func() erased }

// deferNode defers construction of the next computation. Produced by Defer
// and Raise; the trampoline unwraps it in a loop since a recursive definition
// may redirect through an unbounded number of layers.
type deferNode struct{ thunk func() node }

// chainNode is one link of a FlatMap chain: an opaque start computation and
// the continuation from its result to the next computation. start is a thunk
// rather than a node so that re-associated links (see chain) stay lazy: the
// next layer of the chain is only materialized when the trampoline reaches
// it, never while a continuation is being rewrapped.
type chainNode struct {
	start func() node
	k     func(erased) node
}

func (*nowNode) node()    {}
func (*laterNode) node()  {}
func (*alwaysNode) node() {}
func (*deferNode) node()  {}
func (*chainNode) node()  {}

// Eval is a deferred computation producing a value of type A.
// The zero value is not meaningful; build one with [Now], [Later], [Always],
// [Defer] or [Raise], or derive one with [Map], [FlatMap] or [Eval.Memoize].
type Eval[A any] struct {
	n node
}

// Now returns a computation whose value is already known.
// Forcing returns the stored value immediately and never runs any function.
func Now[A any](a A) Eval[A] {
	return Eval[A]{n: &nowNode{v: a}}
}

// Later returns a computation that runs thunk on first forcing and caches
// the result; later forcings return the cached value without rerunning.
func Later[A any](thunk func() A) Eval[A] {
	return Eval[A]{n: &laterNode{thunk: func() erased { return thunk() }}}
}

// Always returns a computation that reruns thunk on every forcing.
// Side effects in thunk are observed once per Value call.
func Always[A any](thunk func() A) Eval[A] {
	return Eval[A]{n: &alwaysNode{thunk: func() erased { return thunk() }}}
}

// Defer returns a computation that, when forced, runs thunk to obtain the
// computation to evaluate. thunk is not invoked at construction time, which
// makes Defer suitable for self-referential or deeply recursive definitions.
func Defer[A any](thunk func() Eval[A]) Eval[A] {
	return Eval[A]{n: &deferNode{thunk: func() node { return thunk().n }}}
}

// Pre-built constants for common trivial values.
var (
	Unit  = Now(struct{}{})
	True  = Now(true)
	False = Now(false)
	Zero  = Now(0)
	One   = Now(1)
)

// Value forces the computation and returns its result.
// Forcing runs on the calling goroutine to completion; a panic raised by a
// thunk or continuation propagates unchanged. Native stack usage is constant
// regardless of chain length or Defer nesting depth.
func (e Eval[A]) Value() A {
	return helper.As[A](force(e.n))
}

// Memoize returns an equivalent computation that evaluates at most once.
// The receiver is never mutated and nothing is forced; already-memoized
// computations (Now, Later) are returned as is.
func (e Eval[A]) Memoize() Eval[A] {
	switch n := e.n.(type) {
	case *nowNode:
		return e
	case *laterNode:
		return e
	case *alwaysNode:
		return Eval[A]{n: &laterNode{thunk: n.thunk}}
	default:
		return Eval[A]{n: &laterNode{thunk: func() erased { return force(e.n) }}}
	}
}

// value fills the memo cell on first call and drops the thunk reference.
// The mutex guarantees at most one successful thunk execution under
// concurrent forcing; a panicking thunk leaves the cell empty, so only a
// successful result is ever published.
func (n *laterNode) value() erased {
	n.mu.Lock()
	defer n.mu.Unlock()
	if !n.done {
		n.v = n.thunk()
		n.done = true
		n.thunk = nil
	}
	return n.v
}
