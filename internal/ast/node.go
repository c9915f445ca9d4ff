package ast

import (
	"marklint/internal/source"
)

// NodeKind is the closed set of syntax node kinds.
// New kinds must be added here deliberately; dispatch over NodeKind is
// exhaustive by convention, with no string-typed fallthrough.
type NodeKind uint8

const (
	// NodeFile is the root of one source file; children are statements.
	NodeFile NodeKind = iota

	// NodeElement is a markup element literal, <tag ...>children</tag> or <tag/>.
	NodeElement
	// NodeText is a raw text run between tags.
	NodeText
	// NodeInterp is a braced {expr} inside element children; a transparent
	// container for the walk.
	NodeInterp

	// NodeCall is callee(args...). May be a creation expression or a plain call.
	NodeCall
	// NodeMember is expr.name.
	NodeMember
	// NodeIdent is a bare identifier.
	NodeIdent
	// NodeString is a string literal; Value holds the unquoted text.
	NodeString
	// NodeNumber is a numeric literal.
	NodeNumber
	// NodeBool is true/false.
	NodeBool
	// NodeNull is the null literal.
	NodeNull
	// NodeArray is [a, b, ...].
	NodeArray

	// NodeTernary is cond ? then : else; children are [cond, then, else].
	NodeTernary
	// NodeLogical is a && b or a || b; children are [lhs, rhs].
	NodeLogical
	// NodeCompare is a == b or a != b; children are [lhs, rhs].
	NodeCompare
	// NodeUnary is !a; single child.
	NodeUnary
	// NodeGroup is a parenthesized (expr); single child.
	NodeGroup

	// NodeArrowFn is (params...) => body; Name list lives in Params, the
	// single child is the body (expression or block).
	NodeArrowFn
	// NodeBlock is { stmts... }.
	NodeBlock
	// NodeLet is let name = expr; single child is the initializer.
	NodeLet
	// NodeReturn is return expr; (child optional).
	NodeReturn
	// NodeExprStmt is expr; as a statement; single child.
	NodeExprStmt
)

var nodeKindNames = [...]string{
	NodeFile:     "File",
	NodeElement:  "Element",
	NodeText:     "Text",
	NodeInterp:   "Interp",
	NodeCall:     "Call",
	NodeMember:   "Member",
	NodeIdent:    "Ident",
	NodeString:   "String",
	NodeNumber:   "Number",
	NodeBool:     "Bool",
	NodeNull:     "Null",
	NodeArray:    "Array",
	NodeTernary:  "Ternary",
	NodeLogical:  "Logical",
	NodeCompare:  "Compare",
	NodeUnary:    "Unary",
	NodeGroup:    "Group",
	NodeArrowFn:  "ArrowFn",
	NodeBlock:    "Block",
	NodeLet:      "Let",
	NodeReturn:   "Return",
	NodeExprStmt: "ExprStmt",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "Unknown"
}

// Node is one syntax tree node. Field use depends on Kind:
//   - Name: element tag, attribute name, identifier, member name, let binding
//   - Value: literal payload (unquoted string, number text, raw text run)
//   - Callee: NodeCall only
//   - Attrs: NodeElement only
//   - Params: NodeArrowFn parameter names
//   - Children: structural children in source order
type Node struct {
	Kind     NodeKind
	Span     source.Span
	Parent   NodeID
	Name     source.StringID
	Value    source.StringID
	Callee   NodeID
	Attrs    []AttrID
	Params   []source.StringID
	Children []NodeID
}

// Attr is one element attribute. Value may be NoNodeID for bare attributes
// (<input disabled>).
type Attr struct {
	Span  source.Span
	Name  source.StringID
	Value NodeID
}
