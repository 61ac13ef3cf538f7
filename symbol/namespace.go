package symbol

import "hash"

// A Static namespace is one whose symbols are all known ahead of time. Each
// symbol in a static namespace is identified by a uint32 id, so a Symbol
// built from a static namespace requires no allocation.
//
// Implementations are expected to be immutable, typically constructed once
// with process lifetime, and must be safe for concurrent readers without
// synchronization. Two namespaces are the same namespace exactly when their
// concrete Go types are identical; the namespace's contents never take part
// in Symbol equality.
type Static interface {
	// NamespaceName returns the namespace's name, used by Symbol.String.
	NamespaceName() string

	// SymbolName returns the name of the symbol with the given id, used by
	// Symbol.String. Symbol imposes no bound on id; whether an out-of-range
	// id panics or yields a fallback name is the implementation's choice.
	SymbolName(id uint32) string
}

// A Dynamic namespace is one whose symbols are not known ahead of time. An
// instance of a Dynamic implementation is both the namespace and the symbol
// value itself, and is owned by the Symbol wrapping it.
//
// Equal, Compare and Hash are only ever called by Symbol on operands that
// Symbol has already verified to have the same concrete type, so
// implementations may type-assert rhs unconditionally. Code that calls these
// methods directly owns that precondition instead.
//
// Implementations must keep Equal, Compare and Hash consistent with each
// other: operands that compare equal must hash identically, and Compare must
// return 0 exactly when Equal returns true.
type Dynamic interface {
	// NamespaceName returns the namespace's name, used by Symbol.String.
	NamespaceName() string

	// SymbolName returns this symbol's name, used by Symbol.String.
	SymbolName() string

	// Clone returns a new instance that is Equal to the receiver and shares
	// no mutable state with it.
	Clone() Dynamic

	// Equal reports whether the receiver equals rhs, which is guaranteed by
	// the caller to have the receiver's concrete type.
	Equal(rhs Dynamic) bool

	// Compare orders the receiver against rhs under the same same-type
	// guarantee as Equal. It returns a value less than, equal to, or greater
	// than 0.
	Compare(rhs Dynamic) int

	// Hash writes this symbol's hash contribution to h. Symbol has already
	// fed the namespace's type identity into h before calling.
	Hash(h hash.Hash)
}
