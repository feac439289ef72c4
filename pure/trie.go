package pure

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// Arg is an argument acceptable to the memoization combinators: any
// comparable value, or a fmt.Stringer identified by its String output.
type Arg any

// tableKey resolves an Arg to a table key. Stringer arguments are collapsed
// to an xxhash digest so unbounded identifier strings stay compact in the
// table.
func tableKey(a Arg) any {
	if s, ok := a.(fmt.Stringer); ok {
		return xxhash.Sum64String(s.String())
	}
	return a
}

// Trie is a bounded concurrent memo table keyed by paths of comparable
// values. Entries live in one of two generations: stores go to the live
// generation, lookups consult the live generation first and fall back to the
// previous one. When the live generation reaches maxSize the previous
// generation is dropped and replaced with a fresh one, which becomes live.
type Trie[O any] struct {
	gens    [2]atomic.Pointer[sync.Map]
	head    atomic.Uint32
	size    atomic.Uint32
	maxSize uint32
}

// NewTrie returns an empty table holding at most maxSize entries per
// generation. Panics if maxSize is 0.
func NewTrie[O any](maxSize uint32) *Trie[O] {
	if maxSize == 0 {
		panic("pure: maxSize must be greater than 0")
	}
	t := &Trie[O]{maxSize: maxSize}
	t.gens[0].Store(&sync.Map{})
	t.gens[1].Store(&sync.Map{})
	return t
}

// Load returns the value stored under the key path, consulting the live
// generation first and the previous generation as fallback.
// Panics on an empty key path.
func (t *Trie[O]) Load(keys []any) (O, bool) {
	head := t.head.Load()
	if v, ok := lookup[O](t.gens[head].Load(), keys); ok {
		return v, true
	}
	return lookup[O](t.gens[1-head].Load(), keys)
}

// Store records value under the key path in the live generation, rotating
// generations first if the live one is full.
// Panics on an empty key path.
func (t *Trie[O]) Store(keys []any, value O) {
	if t.size.CompareAndSwap(t.maxSize, 0) {
		next := 1 - t.head.Load()
		t.gens[next].Store(&sync.Map{})
		t.head.Store(next)
	}
	m := descend(t.gens[t.head.Load()].Load(), keys)
	m.Store(keys[len(keys)-1], value)
	t.size.Add(1)
}

// lookup walks the key path without creating intermediate levels.
func lookup[O any](m *sync.Map, keys []any) (O, bool) {
	var zero O
	last := len(keys) - 1
	if last < 0 {
		panic("pure: empty key path")
	}
	for _, k := range keys[:last] {
		v, ok := m.Load(k)
		if !ok {
			return zero, false
		}
		m, ok = v.(*sync.Map)
		if !ok {
			return zero, false
		}
	}
	v, ok := m.Load(keys[last])
	if !ok {
		return zero, false
	}
	return v.(O), true
}

// descend walks the key path, creating intermediate levels as needed, and
// returns the map holding the final key.
func descend(m *sync.Map, keys []any) *sync.Map {
	last := len(keys) - 1
	if last < 0 {
		panic("pure: empty key path")
	}
	for _, k := range keys[:last] {
		v, _ := m.LoadOrStore(k, &sync.Map{})
		m = v.(*sync.Map)
	}
	return m
}
