// Package nesting checks element trees against the content model: it
// resolves the logical parent tag of every element-like node and reports
// pairings the model rejects.
package nesting

import (
	"marklint/internal/ast"
	"marklint/internal/source"
)

// resolver carries the injected capability sets for one tree.
type resolver struct {
	b          *ast.Builder
	creators   map[string]struct{}
	mapMethods map[string]struct{}
}

// tagOf extracts the statically known tag name of an element-like node.
// Element literals always carry one; a creation call carries one only
// when its first argument is a string literal. ok=false means the node
// is element-like but its tag is dynamic.
func (r *resolver) tagOf(id ast.NodeID) (string, bool) {
	n := r.b.Get(id)
	if n == nil {
		return "", false
	}
	switch n.Kind {
	case ast.NodeElement:
		tag := r.b.Name(id)
		return tag, tag != ""
	case ast.NodeCall:
		if !r.isCreationCall(id) {
			return "", false
		}
		if len(n.Children) == 0 {
			return "", false
		}
		first := r.b.Get(n.Children[0])
		if first == nil || first.Kind != ast.NodeString {
			return "", false
		}
		tag := r.b.Value(n.Children[0])
		return tag, tag != ""
	default:
		return "", false
	}
}

// isCreationCall reports whether the call constructs an element: the
// callee is a bare identifier or the final member of a chain whose name
// is in the creator set (h, createElement, ...).
func (r *resolver) isCreationCall(id ast.NodeID) bool {
	n := r.b.Get(id)
	if n == nil || n.Kind != ast.NodeCall {
		return false
	}
	callee := r.b.Get(n.Callee)
	if callee == nil {
		return false
	}
	switch callee.Kind {
	case ast.NodeIdent, ast.NodeMember:
		_, ok := r.creators[r.b.Name(n.Callee)]
		return ok
	default:
		return false
	}
}

// isMapCall reports whether the call is a collection transform
// (items.map(...), rows.flatMap(...)).
func (r *resolver) isMapCall(id ast.NodeID) bool {
	n := r.b.Get(id)
	if n == nil || n.Kind != ast.NodeCall {
		return false
	}
	callee := r.b.Get(n.Callee)
	if callee == nil || callee.Kind != ast.NodeMember {
		return false
	}
	_, ok := r.mapMethods[r.b.Name(n.Callee)]
	return ok
}

// logicalParent walks the parent links upward from node, skipping
// transparent wrappers, until it finds an element-like ancestor. It
// returns that ancestor's tag and node. ok=false means the walk reached
// the root, an element with a dynamic tag, or a construct whose effect
// on its operands cannot be known; the caller must skip the node.
//
// The walk consumes one parent link per step and never backtracks, so
// it terminates after at most tree-depth steps regardless of how many
// wrappers are stacked.
func (r *resolver) logicalParent(node ast.NodeID) (string, ast.NodeID, bool) {
	cur := r.b.Get(node).Parent
	for cur.IsValid() {
		n := r.b.Get(cur)
		switch n.Kind {
		case ast.NodeElement:
			tag, ok := r.tagOf(cur)
			return tag, cur, ok

		case ast.NodeCall:
			if r.isMapCall(cur) {
				cur = n.Parent
				continue
			}
			if r.isCreationCall(cur) {
				// A dynamic tag stops the walk: reporting against a
				// guessed ancestor would be a false positive.
				tag, ok := r.tagOf(cur)
				return tag, cur, ok
			}
			// An arbitrary call may place its argument anywhere.
			return "", ast.NoNodeID, false

		case ast.NodeTernary, ast.NodeLogical, ast.NodeCompare, ast.NodeUnary,
			ast.NodeGroup, ast.NodeBlock, ast.NodeLet, ast.NodeReturn,
			ast.NodeExprStmt, ast.NodeArrowFn, ast.NodeInterp, ast.NodeArray:
			// Transparent wrappers: grouping and control constructs that
			// do not themselves render an element.
			cur = n.Parent

		default:
			// File root, member chains, literals: no structural parent.
			return "", ast.NoNodeID, false
		}
	}
	return "", ast.NoNodeID, false
}

// parentSpan is the span used for the "opened here" note.
func (r *resolver) parentSpan(id ast.NodeID) source.Span {
	if n := r.b.Get(id); n != nil {
		return n.Span
	}
	return source.Span{}
}
