package nesting

import (
	"fmt"

	"marklint/internal/ast"
	"marklint/internal/content"
	"marklint/internal/diag"
)

// Check validates every element-like node in the builder against the
// content model and reports invalid pairings through opts.Reporter.
// It never fails: nodes whose tag or logical parent cannot be determined
// are skipped, and the tree is never mutated.
func Check(b *ast.Builder, opts Options) {
	model := opts.model()
	r := &resolver{
		b:          b,
		creators:   toSet(opts.Creators, DefaultCreators),
		mapMethods: toSet(opts.MapMethods, DefaultMapMethods),
	}

	b.Walk(func(id ast.NodeID, n *ast.Node) bool {
		if n.Kind != ast.NodeElement && n.Kind != ast.NodeCall {
			return true
		}
		childTag, ok := r.tagOf(id)
		if !ok {
			return true // dynamic or non-creation node, never a violator
		}
		parentTag, parentNode, ok := r.logicalParent(id)
		if !ok {
			return true // root, detached, or unknowable ancestor
		}
		verdict, reason := model.Explain(parentTag, childTag)
		if verdict != content.VerdictInvalid {
			return true
		}
		report(opts.Reporter, r, id, parentNode, parentTag, childTag, reason)
		return true
	})
}

func report(rep diag.Reporter, r *resolver, node, parentNode ast.NodeID, parentTag, childTag string, reason content.Reason) {
	if rep == nil {
		return
	}

	var code diag.Code
	var msg string
	switch reason {
	case content.ReasonVoidParent:
		code = diag.NestVoidParent
		msg = fmt.Sprintf("'%s' is a void element and cannot contain '%s'", parentTag, childTag)
	case content.ReasonInteractiveChild:
		code = diag.NestInteractiveChild
		msg = fmt.Sprintf("interactive element '%s' cannot be nested inside '%s'", childTag, parentTag)
	case content.ReasonExcludedParent:
		code = diag.NestExcludedParent
		msg = fmt.Sprintf("'%s' cannot be nested inside '%s'", childTag, parentTag)
	default:
		code = diag.NestInvalidNesting
		msg = fmt.Sprintf("'%s' is not allowed inside '%s'", childTag, parentTag)
	}

	var notes []diag.Note
	if parentNode.IsValid() {
		notes = append(notes, diag.Note{
			Span: r.parentSpan(parentNode),
			Msg:  fmt.Sprintf("parent element '%s' opened here", parentTag),
		})
	}
	rep.Report(code, diag.SevError, r.b.Get(node).Span, msg, notes)
}

// IsValidNesting answers a single pairing against the default table.
func IsValidNesting(parentTag, childTag string) content.Verdict {
	return content.Default().IsValidNesting(parentTag, childTag)
}
