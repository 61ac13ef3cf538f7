package symbol

import (
	"hash"
	"reflect"
	"strings"
)

// typeName returns a fully qualified, cross-run stable name for a namespace
// type. Pointer indirections are spelled out so that T and *T stay distinct.
// A nil type (the zero Symbol's namespace) yields the empty string, which
// sorts before every real type.
//
// Namespace implementations must be defined types: distinct defined types
// always have distinct qualified names, which keeps the ordering derived
// from typeName strict.
func typeName(t reflect.Type) string {
	if t == nil {
		return ""
	}
	var b strings.Builder
	for t.Kind() == reflect.Pointer {
		b.WriteByte('*')
		t = t.Elem()
	}
	if path := t.PkgPath(); path != "" {
		b.WriteString(path)
		b.WriteByte('.')
		b.WriteString(t.Name())
	} else {
		b.WriteString(t.String())
	}
	return b.String()
}

// cmpTypes orders two namespace type identities. Equality of identities is
// always reflect.Type identity; the name only provides the order.
func cmpTypes(a, b reflect.Type) int {
	if a == b {
		return 0
	}
	return strings.Compare(typeName(a), typeName(b))
}

// writeType feeds a type identity into a hash accumulator. A terminator
// follows the name so that the identity bytes cannot run into whatever the
// caller writes next.
func writeType(h hash.Hash, t reflect.Type) {
	h.Write([]byte(typeName(t)))
	h.Write([]byte{0})
}
