package content

import "fmt"

// Model is the compiled content-model table. It is immutable after
// NewModel returns and safe for unlimited concurrent reads.
type Model struct {
	rules map[string]*compiledRule
}

type compiledRule struct {
	rule       Rule
	parentCats map[Category]struct{}
	parentTags map[string]struct{}
	exclude    map[string]struct{}
}

// NewModel compiles the rule list into a lookup table. Registering the
// same tag name twice is a configuration error and panics: the table is
// constant program data, so a duplicate can only come from a bad edit.
func NewModel(rules []Rule) *Model {
	m := &Model{rules: make(map[string]*compiledRule, len(rules))}
	for _, r := range rules {
		if r.Name == "" {
			panic("content: rule with empty tag name")
		}
		if r.Context == CategoryInvalid || r.Context >= categoryCount {
			panic(fmt.Sprintf("content: rule %q has invalid context", r.Name))
		}
		if _, dup := m.rules[r.Name]; dup {
			panic(fmt.Sprintf("content: duplicate rule for tag %q", r.Name))
		}

		cr := &compiledRule{
			rule:       r,
			parentCats: make(map[Category]struct{}, len(r.AllowedParents.Categories)),
			parentTags: make(map[string]struct{}, len(r.AllowedParents.Tags)),
			exclude:    make(map[string]struct{}, len(r.Exclude)),
		}
		for _, c := range r.AllowedParents.Categories {
			cr.parentCats[c] = struct{}{}
		}
		for _, t := range r.AllowedParents.Tags {
			cr.parentTags[t] = struct{}{}
		}
		for _, t := range r.Exclude {
			cr.exclude[t] = struct{}{}
		}
		m.rules[r.Name] = cr
	}
	return m
}

// Classify returns the rule for a tag, or ok=false for tags the table
// does not know (custom components, typos, anything dynamic). Unknown
// tags never trigger a violation in either direction.
func (m *Model) Classify(tag string) (Rule, bool) {
	cr, ok := m.rules[tag]
	if !ok {
		return Rule{}, false
	}
	return cr.rule, true
}

// Len reports how many tags the table knows.
func (m *Model) Len() int {
	return len(m.rules)
}

// IsValidNesting decides whether childTag may appear directly under
// parentTag. See Explain for the rule order.
func (m *Model) IsValidNesting(parentTag, childTag string) Verdict {
	v, _ := m.Explain(parentTag, childTag)
	return v
}

// Explain is IsValidNesting plus the rule that fired. The checks run in
// a fixed order; earlier rules win:
//
//  1. unknown parent        -> Unknown
//  2. void parent           -> Invalid
//  3. unknown child         -> Unknown
//  4. interactive child under a no-interactive parent -> Invalid
//  5. child excludes parent -> Invalid
//  6. parent context or literal parent tag in the child's allowed set
//     -> Valid, otherwise Invalid
func (m *Model) Explain(parentTag, childTag string) (Verdict, Reason) {
	parent, ok := m.rules[parentTag]
	if !ok {
		return VerdictUnknown, ReasonNone
	}
	if parent.rule.Context == CategoryVoid {
		return VerdictInvalid, ReasonVoidParent
	}
	child, ok := m.rules[childTag]
	if !ok {
		return VerdictUnknown, ReasonNone
	}
	if parent.rule.NoInteractiveDescendants && child.rule.Interactive {
		return VerdictInvalid, ReasonInteractiveChild
	}
	if _, banned := child.exclude[parentTag]; banned {
		return VerdictInvalid, ReasonExcludedParent
	}
	if _, ok := child.parentCats[parent.rule.Context]; ok {
		return VerdictValid, ReasonNone
	}
	if _, ok := child.parentTags[parentTag]; ok {
		return VerdictValid, ReasonNone
	}
	return VerdictInvalid, ReasonParentMismatch
}

// Tags returns all known tag names in unspecified order.
func (m *Model) Tags() []string {
	out := make([]string, 0, len(m.rules))
	for name := range m.rules {
		out = append(out, name)
	}
	return out
}
