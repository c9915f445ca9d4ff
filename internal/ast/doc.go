// Package ast defines the arena-allocated syntax tree for markup-expression
// files. Node kinds form a closed set; every node carries a parent link so
// upward walks (the nesting checker's logical-parent resolution) are cheap.
// The tree is append-only: once built by the parser it is never mutated.
package ast
