// Package pure memoizes pure functions over a bounded table.
//
// [Memo1] through [Memo4] wrap a pure function of comparable-or-Stringer
// arguments so repeated calls with the same arguments return the cached
// result; [Memo1E] and [Memo2E] do the same for functions that also return
// an error. [Lazy1] and [Lazy2] memoize behind the eval core instead: each
// distinct argument tuple maps to one shared memoized [eval.Eval], so the
// function runs only when (and if) somebody forces it.
//
// The backing store is a [Trie], a two-generation concurrent table: once the
// live generation reaches its size bound, the oldest generation is dropped
// and new entries start a fresh one, keeping total residency within two
// bounds' worth of entries.
package pure
