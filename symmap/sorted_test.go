package symmap_test

import (
	"sort"
	"testing"

	"github.com/audunhalland/dyn-symbol/symbol"
	"github.com/audunhalland/dyn-symbol/symmap"
)

func sortedFrom(keys []symbol.Symbol) symmap.Sorted[int] {
	var s symmap.Sorted[int]
	for i, k := range keys {
		s = s.Set(k, i)
	}
	return s
}

func rangeKeys(s symmap.Sorted[int]) []symbol.Symbol {
	var keys []symbol.Symbol
	s.Range(func(k symbol.Symbol, _ int) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func TestSortedRangeOrder(t *testing.T) {
	keys := []symbol.Symbol{
		tag("b"),
		symbol.NewStatic(shapes, 1),
		label("a"),
		symbol.NewStatic(colors, 2),
		symbol.NewStatic(colors, 0),
		tag("a"),
		symbol.NewStatic(shapes, 0),
	}
	s := sortedFrom(keys)

	want := append([]symbol.Symbol(nil), keys...)
	sort.Slice(want, func(i, j int) bool { return want[i].Cmp(want[j]) < 0 })

	got := rangeKeys(s)
	if len(got) != len(want) {
		t.Fatalf("ranged over %d keys, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("key %d is %v, want %v", i, got[i], want[i])
		}
	}

	// All statics precede all dynamics.
	seenDynamic := false
	for _, k := range got {
		if k.IsDynamic() {
			seenDynamic = true
		} else if seenDynamic {
			t.Fatalf("static key %v ranged after a dynamic key", k)
		}
	}
}

func TestSortedReplace(t *testing.T) {
	var s symmap.Sorted[int]
	s = s.Set(tag("foo"), 1)
	s = s.Set(tag("foo"), 2) // distinct instance, equal symbol

	if s.Len() != 1 {
		t.Errorf("expected one entry, got %d", s.Len())
	}
	if v, ok := s.Get(tag("foo")); !ok || v != 2 {
		t.Errorf("got (%d, %v), want (2, true)", v, ok)
	}
}

func TestSortedPersistence(t *testing.T) {
	base := sortedFrom([]symbol.Symbol{
		symbol.NewStatic(colors, 0),
		tag("a"),
	})
	grown := base.Set(tag("b"), 99)

	if base.Len() != 2 || grown.Len() != 3 {
		t.Fatalf("got lengths %d and %d, want 2 and 3", base.Len(), grown.Len())
	}
	if _, ok := base.Get(tag("b")); ok {
		t.Error("Set must not mutate the receiver")
	}
	if v, ok := grown.Get(tag("b")); !ok || v != 99 {
		t.Errorf("got (%d, %v) from the new version, want (99, true)", v, ok)
	}
}

func TestSortedGetMiss(t *testing.T) {
	s := sortedFrom([]symbol.Symbol{symbol.NewStatic(colors, 0), tag("a")})
	if _, ok := s.Get(symbol.NewStatic(shapes, 0)); ok {
		t.Error("foreign namespace must miss")
	}
	if _, ok := s.Get(label("a")); ok {
		t.Error("same name in a foreign dynamic namespace must miss")
	}
}
