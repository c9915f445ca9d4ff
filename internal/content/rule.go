package content

// Rule is one entry of the content-model table: everything the checker
// needs to know about one tag name.
type Rule struct {
	// Name is the tag identifier and the unique table key.
	Name string
	// Context is the structural category this tag establishes for its
	// children.
	Context Category
	// AllowedParents lists the categories and literal tag names this tag
	// may legally appear under. Empty means the tag is only valid at the
	// structural root.
	AllowedParents ParentSet
	// Exclude lists tag names that are forbidden as direct parent even
	// when AllowedParents would otherwise match (self-nesting bans).
	Exclude []string
	// Interactive marks interactive controls.
	Interactive bool
	// NoInteractiveDescendants forbids any direct Interactive child.
	NoInteractiveDescendants bool
	// Transparent marks tags whose content model passes through to the
	// surrounding context. Recorded but not acted on.
	Transparent bool
}

// ParentSet is the allowed-parents declaration of one rule: category
// matches plus tag-name-specific allowances.
type ParentSet struct {
	Categories []Category
	Tags       []string
}

// Parents builds a ParentSet from categories only.
func Parents(cats ...Category) ParentSet {
	return ParentSet{Categories: cats}
}

// WithTags adds literal tag allowances to the set.
func (ps ParentSet) WithTags(tags ...string) ParentSet {
	ps.Tags = append(ps.Tags, tags...)
	return ps
}

// Verdict is the tri-state outcome of a nesting query. Unknown means the
// pairing cannot be judged statically and must never be reported.
type Verdict uint8

const (
	VerdictUnknown Verdict = iota
	VerdictValid
	VerdictInvalid
)

func (v Verdict) String() string {
	switch v {
	case VerdictValid:
		return "valid"
	case VerdictInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Reason says which rule produced an Invalid verdict, so the caller can
// pick a precise diagnostic.
type Reason uint8

const (
	ReasonNone Reason = iota
	// ReasonVoidParent: the parent admits no children at all.
	ReasonVoidParent
	// ReasonInteractiveChild: an interactive control under a parent that
	// forbids interactive descendants.
	ReasonInteractiveChild
	// ReasonExcludedParent: the child explicitly bans this parent.
	ReasonExcludedParent
	// ReasonParentMismatch: the parent's context matches neither the
	// child's allowed categories nor its literal tag allowances.
	ReasonParentMismatch
)

func (r Reason) String() string {
	switch r {
	case ReasonVoidParent:
		return "void parent"
	case ReasonInteractiveChild:
		return "interactive child"
	case ReasonExcludedParent:
		return "excluded parent"
	case ReasonParentMismatch:
		return "parent mismatch"
	default:
		return "none"
	}
}
