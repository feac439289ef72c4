package eval

// force evaluates a node graph to a final value using an explicit
// continuation work list instead of native recursion.
//
// The loop maintains a current node and a LIFO slice of pending
// continuations (top at the end):
//
//   - a redirect is unwrapped in place, since deferred definitions may
//     redirect through an unbounded number of layers;
//   - a chain link materializes its start; if the start is itself a chain
//     link, both continuations are pushed in one step (inner on top, so it
//     runs first), flattening two chain levels into the shared work list;
//   - a leaf is forced, and its value either feeds the topmost pending
//     continuation or, with an empty work list, is the final result.
//
// Every iteration either shrinks the unresolved chain or unwraps one
// redirect layer, so the loop terminates whenever the underlying thunks do.
// Native stack usage stays constant; the unbounded structure lives in the
// heap-allocated work list.
func force(root node) erased {
	curr := root
	var pending []func(erased) node
	for {
		switch n := curr.(type) {
		case *deferNode:
			curr = n.thunk()
		case *chainNode:
			start := n.start()
			if inner, ok := start.(*chainNode); ok {
				pending = append(pending, n.k, inner.k)
				curr = inner.start()
			} else {
				pending = append(pending, n.k)
				curr = start
			}
		default:
			v := leafValue(curr)
			top := len(pending) - 1
			if top < 0 {
				return v
			}
			k := pending[top]
			pending[top] = nil
			pending = pending[:top]
			curr = k(v)
		}
	}
}

// leafValue forces one of the three leaf variants.
func leafValue(n node) erased {
	switch l := n.(type) {
	case *nowNode:
		return l.v
	case *laterNode:
		return l.value()
	case *alwaysNode:
		return l.thunk()
	}
	panic("eval: unknown node variant")
}
