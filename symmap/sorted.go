package symmap

import (
	"math/rand"

	"github.com/audunhalland/dyn-symbol/symbol"
)

// A Sorted is an immutable sorted map from Symbols to values, ordered by
// Symbol.Cmp. Set returns a new map and leaves the receiver untouched, so
// any version may be retained and read concurrently without locks.
//
// The zero Sorted is empty.
type Sorted[V any] struct {
	root *treap[V]
	size int
}

// A treap is a binary search tree using random priorities to maintain
// balance. See Wikipedia for a description:
// https://en.wikipedia.org/wiki/Treap.
//
// The treap is implemented as a path-copying persistent tree. A pointer to a
// treap will always represent the same data. Operations that mutate the
// treap return a pointer to a new root node.
type treap[V any] struct {
	key         symbol.Symbol
	val         V
	priority    int64
	left, right *treap[V]
}

// Set returns a map with v stored under k, replacing any value stored under
// an equal symbol.
func (s Sorted[V]) Set(k symbol.Symbol, v V) Sorted[V] {
	root, added := s.root.insert(k, v)
	size := s.size
	if added {
		size++
	}
	return Sorted[V]{root: root, size: size}
}

// Get retrieves the value stored under a symbol equal to k.
func (s Sorted[V]) Get(k symbol.Symbol) (v V, ok bool) {
	for t := s.root; t != nil; {
		switch cmp := k.Cmp(t.key); {
		case cmp == 0:
			return t.val, true
		case cmp < 0:
			t = t.left
		default:
			t = t.right
		}
	}
	return v, false
}

// Len returns the number of entries.
func (s Sorted[V]) Len() int {
	return s.size
}

// Range calls f for every entry in ascending key order until f returns
// false.
func (s Sorted[V]) Range(f func(k symbol.Symbol, v V) bool) {
	s.root.each(f)
}

// insert returns the root of a treap containing (k, v). Nodes on the path to
// the key are copied; the rest of the tree is shared with the receiver.
func (t *treap[V]) insert(k symbol.Symbol, v V) (root *treap[V], added bool) {
	if t == nil {
		return &treap[V]{
			key:      k,
			val:      v,
			priority: rand.Int63(),
		}, true
	}

	root = new(treap[V])
	*root = *t

	switch cmp := k.Cmp(t.key); {
	case cmp == 0:
		root.val = v
		return root, false

	case cmp < 0:
		var left *treap[V]
		left, added = t.left.insert(k, v)
		root.left = left
		if left.priority > root.priority {
			left.right, root.left = root, left.right
			root = left
		}
		return root, added

	default:
		var right *treap[V]
		right, added = t.right.insert(k, v)
		root.right = right
		if right.priority > root.priority {
			right.left, root.right = root, right.left
			root = right
		}
		return root, added
	}
}

func (t *treap[V]) each(f func(k symbol.Symbol, v V) bool) bool {
	if t == nil {
		return true
	}
	return t.left.each(f) && f(t.key, t.val) && t.right.each(f)
}
