// Package symmap provides in-memory key/value stores keyed by Symbols.
//
// Go's builtin maps key on ==, which cannot express Symbol's namespace-aware
// equality, so this package supplies a hash map driven by Symbol.Sum64 and
// Symbol.Equal, and a persistent sorted map driven by Symbol.Cmp.
package symmap

import "github.com/audunhalland/dyn-symbol/symbol"

// A Map associates values with Symbols. Keys hash with Symbol.Sum64 and
// collide into chains resolved with Symbol.Equal, so equal symbols from
// distinct instances name the same entry while symbols from different
// namespaces never collide logically.
//
// The zero Map is empty and ready to use. A Map is safe for concurrent
// readers, but writes require external synchronization.
type Map[V any] struct {
	buckets map[uint64][]entry[V]
	size    int
}

type entry[V any] struct {
	key symbol.Symbol
	val V
}

// Set associates v with k, replacing any value previously stored under an
// equal symbol.
func (m *Map[V]) Set(k symbol.Symbol, v V) {
	if m.buckets == nil {
		m.buckets = make(map[uint64][]entry[V])
	}
	sum := k.Sum64()
	chain := m.buckets[sum]
	for i := range chain {
		if chain[i].key.Equal(k) {
			chain[i].val = v
			return
		}
	}
	m.buckets[sum] = append(chain, entry[V]{key: k, val: v})
	m.size++
}

// Get retrieves the value stored under a symbol equal to k.
func (m *Map[V]) Get(k symbol.Symbol) (v V, ok bool) {
	for _, e := range m.buckets[k.Sum64()] {
		if e.key.Equal(k) {
			return e.val, true
		}
	}
	return v, false
}

// Delete removes the entry stored under a symbol equal to k; it reports
// whether such an entry existed.
func (m *Map[V]) Delete(k symbol.Symbol) bool {
	sum := k.Sum64()
	chain := m.buckets[sum]
	for i := range chain {
		if chain[i].key.Equal(k) {
			chain = append(chain[:i], chain[i+1:]...)
			if len(chain) == 0 {
				delete(m.buckets, sum)
			} else {
				m.buckets[sum] = chain
			}
			m.size--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return m.size
}

// Range calls f for every entry in unspecified order until f returns false.
func (m *Map[V]) Range(f func(k symbol.Symbol, v V) bool) {
	for _, chain := range m.buckets {
		for _, e := range chain {
			if !f(e.key, e.val) {
				return
			}
		}
	}
}
