package ast

import (
	"marklint/internal/source"
)

type Hints struct{ Nodes, Attrs uint }

// Builder owns the node and attribute arenas for one file plus the shared
// string interner. One builder per file; the interner may be shared across
// parallel parses.
type Builder struct {
	Nodes           *Arena[Node]
	Attrs           *Arena[Attr]
	StringsInterner *source.Interner
}

func NewBuilder(hints Hints, interner *source.Interner) *Builder {
	if hints.Nodes == 0 {
		hints.Nodes = 1 << 8
	}
	if hints.Attrs == 0 {
		hints.Attrs = 1 << 5
	}
	if interner == nil {
		interner = source.NewInterner()
	}
	return &Builder{
		Nodes:           NewArena[Node](hints.Nodes),
		Attrs:           NewArena[Attr](hints.Attrs),
		StringsInterner: interner,
	}
}

// NewNode allocates a node with no parent yet.
func (b *Builder) NewNode(kind NodeKind, sp source.Span) NodeID {
	return NodeID(b.Nodes.Allocate(Node{Kind: kind, Span: sp}))
}

// Get returns the node for the ID, or nil for NoNodeID.
func (b *Builder) Get(id NodeID) *Node {
	return b.Nodes.Get(uint32(id))
}

// GetAttr returns the attribute for the ID, or nil for NoAttrID.
func (b *Builder) GetAttr(id AttrID) *Attr {
	return b.Attrs.Get(uint32(id))
}

// AddChild appends child to parent's children and sets the parent link.
func (b *Builder) AddChild(parent, child NodeID) {
	if !parent.IsValid() || !child.IsValid() {
		return
	}
	p := b.Get(parent)
	p.Children = append(p.Children, child)
	b.Get(child).Parent = parent
}

// SetCallee records the callee of a call node and parents it to the call.
func (b *Builder) SetCallee(call, callee NodeID) {
	if !call.IsValid() || !callee.IsValid() {
		return
	}
	b.Get(call).Callee = callee
	b.Get(callee).Parent = call
}

// AddAttr allocates an attribute on an element. The value expression keeps
// no parent link on purpose: an attribute value is not a structural child,
// so the logical-parent walk must terminate at its root instead of crossing
// into the element.
func (b *Builder) AddAttr(element NodeID, sp source.Span, name source.StringID, value NodeID) AttrID {
	if !element.IsValid() {
		return NoAttrID
	}
	id := AttrID(b.Attrs.Allocate(Attr{Span: sp, Name: name, Value: value}))
	el := b.Get(element)
	el.Attrs = append(el.Attrs, id)
	return id
}

// Name returns the interned name of a node, or "" when absent.
func (b *Builder) Name(id NodeID) string {
	n := b.Get(id)
	if n == nil || n.Name == source.NoStringID {
		return ""
	}
	s, _ := b.StringsInterner.Lookup(n.Name)
	return s
}

// Value returns the interned literal payload of a node, or "" when absent.
func (b *Builder) Value(id NodeID) string {
	n := b.Get(id)
	if n == nil || n.Value == source.NoStringID {
		return ""
	}
	s, _ := b.StringsInterner.Lookup(n.Value)
	return s
}

// Walk visits every allocated node in allocation order.
func (b *Builder) Walk(visit func(id NodeID, n *Node) bool) {
	for i := uint32(1); i <= b.Nodes.Len(); i++ {
		if !visit(NodeID(i), b.Nodes.Get(i)) {
			return
		}
	}
}
