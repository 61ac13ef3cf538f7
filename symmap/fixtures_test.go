package symmap_test

import (
	"hash"
	"io"
	"strings"

	"github.com/audunhalland/dyn-symbol/symbol"
)

// Test namespaces: two static name tables and two string-based dynamic
// namespaces of distinct types.

type colorNS struct {
	names []string
}

func (ns *colorNS) NamespaceName() string { return "color" }
func (ns *colorNS) SymbolName(id uint32) string { return ns.names[id] }

type shapeNS struct {
	names []string
}

func (ns *shapeNS) NamespaceName() string { return "shape" }
func (ns *shapeNS) SymbolName(id uint32) string { return ns.names[id] }

var (
	colors = &colorNS{names: []string{"red", "green", "blue"}}
	shapes = &shapeNS{names: []string{"circle", "square"}}
)

type tagNS struct {
	tag string
}

func (d *tagNS) NamespaceName() string { return "tag" }
func (d *tagNS) SymbolName() string { return d.tag }
func (d *tagNS) Clone() symbol.Dynamic { return &tagNS{tag: d.tag} }

func (d *tagNS) Equal(rhs symbol.Dynamic) bool {
	return d.tag == rhs.(*tagNS).tag
}

func (d *tagNS) Compare(rhs symbol.Dynamic) int {
	return strings.Compare(d.tag, rhs.(*tagNS).tag)
}

func (d *tagNS) Hash(h hash.Hash) {
	io.WriteString(h, d.tag)
}

type labelNS struct {
	label string
}

func (d *labelNS) NamespaceName() string { return "label" }
func (d *labelNS) SymbolName() string { return d.label }
func (d *labelNS) Clone() symbol.Dynamic { return &labelNS{label: d.label} }

func (d *labelNS) Equal(rhs symbol.Dynamic) bool {
	return d.label == rhs.(*labelNS).label
}

func (d *labelNS) Compare(rhs symbol.Dynamic) int {
	return strings.Compare(d.label, rhs.(*labelNS).label)
}

func (d *labelNS) Hash(h hash.Hash) {
	io.WriteString(h, d.label)
}

func tag(s string) symbol.Symbol { return symbol.NewDynamic(&tagNS{tag: s}) }
func label(s string) symbol.Symbol { return symbol.NewDynamic(&labelNS{label: s}) }
