package nesting

import (
	"marklint/internal/content"
	"marklint/internal/diag"
)

// DefaultCreators are the call names treated as element creation
// expressions when no configuration overrides them.
var DefaultCreators = []string{"h", "createElement", "jsx"}

// DefaultMapMethods are the member-call names treated as collection
// transforms: their call site is skipped by the logical-parent walk
// because the transform produces siblings in place of itself.
var DefaultMapMethods = []string{"map", "flatMap"}

// Options configures one checker run.
type Options struct {
	// Reporter receives one diagnostic per invalid pairing. Nil drops them.
	Reporter diag.Reporter
	// Model is the content-model table; nil selects content.Default().
	Model *content.Model
	// Creators overrides DefaultCreators when non-empty.
	Creators []string
	// MapMethods overrides DefaultMapMethods when non-empty.
	MapMethods []string
}

func (o Options) model() *content.Model {
	if o.Model != nil {
		return o.Model
	}
	return content.Default()
}

func toSet(names, fallback []string) map[string]struct{} {
	if len(names) == 0 {
		names = fallback
	}
	set := make(map[string]struct{}, len(names))
	for _, n := range names {
		set[n] = struct{}{}
	}
	return set
}
