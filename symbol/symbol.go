// Package symbol provides a single polymorphic identifier type that mixes
// static and dynamic allocation.
//
// A Symbol can stand in for a string as an identifier. Symbols from a static
// namespace are a borrowed reference plus an integer and allocate nothing;
// symbols from a dynamic namespace carry their own heap-allocated instance.
// Either way, Symbol is one plain, non-generic type with full value
// semantics, suitable as a key in hash maps and sorted maps that accept an
// Equal/Hash/Cmp contract.
//
// The package defines no namespaces of its own and no serialization; both
// belong to namespace providers.
package symbol

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
	"reflect"
)

// A Symbol is an identifier originating from either a static or a dynamic
// namespace. Exactly one variant is active. Symbols are immutable; they are
// created by NewStatic or NewDynamic and compared with Equal, Cmp and Hash.
//
// The zero Symbol is a degenerate static symbol with no namespace. It equals
// only another zero Symbol, orders before every other symbol, and formats as
// "?::0".
type Symbol struct {
	ns  Static
	id  uint32
	dyn Dynamic
}

// NewStatic returns the static symbol with the given id in ns. The namespace
// is borrowed, not copied; it must outlive every symbol referencing it.
func NewStatic(ns Static, id uint32) Symbol {
	return Symbol{ns: ns, id: id}
}

// NewDynamic returns a dynamic symbol owning inst. The caller must not
// retain inst: duplicating the symbol afterwards goes through Clone.
func NewDynamic(inst Dynamic) Symbol {
	return Symbol{dyn: inst}
}

// IsStatic reports whether the static variant is active.
func (s Symbol) IsStatic() bool {
	return s.dyn == nil
}

// IsDynamic reports whether the dynamic variant is active.
func (s Symbol) IsDynamic() bool {
	return s.dyn != nil
}

// Origin returns the symbol's static namespace or dynamic instance as an
// untyped value, so callers can inspect the symbol's provenance with a type
// assertion or reflect.TypeOf without going through the narrower
// DowncastStatic and DowncastDynamic helpers.
func (s Symbol) Origin() any {
	if s.dyn != nil {
		return s.dyn
	}
	if s.ns == nil {
		return nil
	}
	return s.ns
}

// DowncastStatic recovers the concrete static namespace of s along with the
// symbol's id. It reports false for dynamic symbols and for static symbols
// whose namespace is not a T.
func DowncastStatic[T Static](s Symbol) (ns T, id uint32, ok bool) {
	if s.dyn != nil || s.ns == nil {
		return ns, 0, false
	}
	if ns, ok = s.ns.(T); !ok {
		return ns, 0, false
	}
	return ns, s.id, true
}

// DowncastDynamic recovers the concrete dynamic instance of s. It reports
// false for static symbols and for dynamic symbols whose instance is not
// a T.
func DowncastDynamic[T Dynamic](s Symbol) (inst T, ok bool) {
	if s.dyn == nil {
		return inst, false
	}
	inst, ok = s.dyn.(T)
	return inst, ok
}

// Clone returns an independent copy of s. Static symbols copy the reference
// and id; dynamic symbols delegate to the instance's Clone, which may
// allocate.
func (s Symbol) Clone() Symbol {
	if s.dyn != nil {
		return Symbol{dyn: s.dyn.Clone()}
	}
	return s
}

// String formats the symbol as "<namespace>::<name>".
func (s Symbol) String() string {
	if s.dyn != nil {
		return s.dyn.NamespaceName() + "::" + s.dyn.SymbolName()
	}
	if s.ns == nil {
		return "?::0"
	}
	return s.ns.NamespaceName() + "::" + s.ns.SymbolName(s.id)
}

// Equal reports whether s and rhs are the same symbol. Symbols of different
// variants are never equal. Static symbols are equal when their namespaces
// have identical concrete types and their ids match; namespace contents are
// never consulted. Dynamic symbols are equal when their instances have
// identical concrete types and the instances' own Equal agrees.
func (s Symbol) Equal(rhs Symbol) bool {
	if s.dyn != nil {
		if rhs.dyn == nil || reflect.TypeOf(s.dyn) != reflect.TypeOf(rhs.dyn) {
			return false
		}
		return s.dyn.Equal(rhs.dyn)
	}
	if rhs.dyn != nil {
		return false
	}
	return s.id == rhs.id && reflect.TypeOf(s.ns) == reflect.TypeOf(rhs.ns)
}

// Cmp provides a total ordering of Symbols, consistent with Equal. It
// returns a value less than, equal to, or greater than 0 if s is ordered
// before, equal to, or after rhs.
//
// Static symbols order before dynamic symbols. Within a variant, symbols
// order by namespace type identity first, using a stable ordering derived
// from the fully qualified type name, then by id (static) or by the
// instances' Compare (dynamic).
func (s Symbol) Cmp(rhs Symbol) int {
	switch {
	case s.dyn == nil && rhs.dyn == nil:
		ta, tb := reflect.TypeOf(s.ns), reflect.TypeOf(rhs.ns)
		if ta != tb {
			return cmpTypes(ta, tb)
		}
		switch {
		case s.id < rhs.id:
			return -1
		case s.id > rhs.id:
			return 1
		default:
			return 0
		}
	case s.dyn != nil && rhs.dyn != nil:
		ta, tb := reflect.TypeOf(s.dyn), reflect.TypeOf(rhs.dyn)
		if ta != tb {
			return cmpTypes(ta, tb)
		}
		return s.dyn.Compare(rhs.dyn)
	case s.dyn == nil:
		return -1
	default:
		return 1
	}
}

// Hash writes the symbol's hash to h. The namespace's type identity is fed
// first, so symbols from different namespaces hash apart even when their
// ids or names coincide. Equal symbols write identical bytes.
func (s Symbol) Hash(h hash.Hash) {
	if s.dyn != nil {
		writeType(h, reflect.TypeOf(s.dyn))
		s.dyn.Hash(h)
		return
	}
	writeType(h, reflect.TypeOf(s.ns))
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], s.id)
	h.Write(buf[:])
}

// Sum64 returns the FNV-64a hash of the symbol, for consumers that want a
// single word rather than an accumulator.
func (s Symbol) Sum64() uint64 {
	h := fnv.New64a()
	s.Hash(h)
	return h.Sum64()
}
