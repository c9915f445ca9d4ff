package content

import "testing"

func TestVoidParentRejectsEveryChild(t *testing.T) {
	m := Default()
	for _, parent := range m.Tags() {
		rule, _ := m.Classify(parent)
		if rule.Context != CategoryVoid {
			continue
		}
		for _, child := range m.Tags() {
			if got := m.IsValidNesting(parent, child); got != VerdictInvalid {
				t.Fatalf("IsValidNesting(%q, %q) = %v, want invalid (void parent)", parent, child, got)
			}
		}
	}
}

func TestUnknownTagIsAlwaysUnknown(t *testing.T) {
	m := Default()
	for _, known := range m.Tags() {
		if got := m.IsValidNesting("x-custom", known); got != VerdictUnknown {
			t.Fatalf("unknown parent: IsValidNesting(x-custom, %q) = %v", known, got)
		}
		rule, _ := m.Classify(known)
		if rule.Context == CategoryVoid {
			// Void wins over the unknown child per rule order.
			continue
		}
		if got := m.IsValidNesting(known, "x-custom"); got != VerdictUnknown {
			t.Fatalf("unknown child: IsValidNesting(%q, x-custom) = %v", known, got)
		}
	}
}

func TestVoidParentBeatsUnknownChild(t *testing.T) {
	m := Default()
	if got := m.IsValidNesting("br", "x-custom"); got != VerdictInvalid {
		t.Fatalf("void parent must win over unknown child, got %v", got)
	}
}

func TestPredicateIsPure(t *testing.T) {
	m := Default()
	first := m.IsValidNesting("table", "td")
	for i := 0; i < 100; i++ {
		if got := m.IsValidNesting("table", "td"); got != first {
			t.Fatalf("verdict changed across calls: %v then %v", first, got)
		}
	}
}

func TestTableNesting(t *testing.T) {
	m := Default()
	cases := []struct {
		parent, child string
		want          Verdict
	}{
		{"table", "tr", VerdictValid},     // row directly in table
		{"tbody", "tr", VerdictValid},     // row in a section
		{"table", "td", VerdictInvalid},   // cell needs a row
		{"tr", "td", VerdictValid},        //
		{"tr", "th", VerdictValid},        //
		{"div", "tr", VerdictInvalid},     // row outside any table
		{"table", "tbody", VerdictValid},  //
		{"table", "caption", VerdictValid},
		{"colgroup", "col", VerdictValid},
		{"colgroup", "tr", VerdictInvalid}, // excluded parent
		{"table", "x-grid", VerdictUnknown},
	}
	for _, tc := range cases {
		if got := m.IsValidNesting(tc.parent, tc.child); got != tc.want {
			t.Errorf("IsValidNesting(%q, %q) = %v, want %v", tc.parent, tc.child, got, tc.want)
		}
	}
}

func TestInteractiveDescendants(t *testing.T) {
	m := Default()
	v, reason := m.Explain("button", "input")
	if v != VerdictInvalid || reason != ReasonInteractiveChild {
		t.Fatalf("button>input = %v/%v, want invalid/interactive child", v, reason)
	}
	v, reason = m.Explain("a", "button")
	if v != VerdictInvalid || reason != ReasonInteractiveChild {
		t.Fatalf("a>button = %v/%v, want invalid/interactive child", v, reason)
	}
	if got := m.IsValidNesting("a", "span"); got != VerdictValid {
		t.Fatalf("a>span = %v, want valid", got)
	}
}

func TestSelfNestingBans(t *testing.T) {
	m := Default()
	cases := []struct {
		parent, child string
		wantReason    Reason
	}{
		{"form", "form", ReasonExcludedParent},
		{"label", "label", ReasonExcludedParent},
		{"a", "a", ReasonInteractiveChild}, // interactive rule fires first
	}
	for _, tc := range cases {
		v, reason := m.Explain(tc.parent, tc.child)
		if v != VerdictInvalid || reason != tc.wantReason {
			t.Errorf("Explain(%q, %q) = %v/%v, want invalid/%v", tc.parent, tc.child, v, reason, tc.wantReason)
		}
	}
}

func TestPhrasingContextRejectsBlocks(t *testing.T) {
	m := Default()
	if got := m.IsValidNesting("p", "div"); got != VerdictInvalid {
		t.Fatalf("p>div = %v, want invalid", got)
	}
	if got := m.IsValidNesting("p", "span"); got != VerdictValid {
		t.Fatalf("p>span = %v, want valid", got)
	}
	if got := m.IsValidNesting("h1", "section"); got != VerdictInvalid {
		t.Fatalf("h1>section = %v, want invalid", got)
	}
}

func TestLiteralTagAllowances(t *testing.T) {
	m := Default()
	cases := []struct {
		parent, child string
		want          Verdict
	}{
		{"figure", "figcaption", VerdictValid},
		{"div", "figcaption", VerdictInvalid},
		{"details", "summary", VerdictValid},
		{"fieldset", "legend", VerdictValid},
		{"picture", "img", VerdictValid}, // tag allowance on top of categories
		{"span", "img", VerdictValid},
	}
	for _, tc := range cases {
		if got := m.IsValidNesting(tc.parent, tc.child); got != tc.want {
			t.Errorf("IsValidNesting(%q, %q) = %v, want %v", tc.parent, tc.child, got, tc.want)
		}
	}
}

func TestTextContentTags(t *testing.T) {
	m := Default()
	for _, parent := range []string{"title", "textarea", "option", "script"} {
		if got := m.IsValidNesting(parent, "span"); got != VerdictInvalid {
			t.Errorf("%s>span = %v, want invalid (text content only)", parent, got)
		}
	}
}

func TestEmptyAllowedParentsOnlyValidAtRoot(t *testing.T) {
	m := Default()
	for _, parent := range m.Tags() {
		rule, _ := m.Classify(parent)
		if rule.Context == CategoryVoid {
			continue
		}
		if got := m.IsValidNesting(parent, "html"); got != VerdictInvalid {
			t.Errorf("%s>html = %v, want invalid", parent, got)
		}
	}
}

func TestNewModelRejectsDuplicates(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("duplicate registration must panic")
		}
	}()
	NewModel([]Rule{
		{Name: "td", Context: CategoryFlow},
		{Name: "td", Context: CategoryFlow},
	})
}

func TestNewModelRejectsInvalidContext(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("invalid context must panic")
		}
	}()
	NewModel([]Rule{{Name: "bogus"}})
}

func TestClassify(t *testing.T) {
	m := Default()
	rule, ok := m.Classify("tr")
	if !ok || rule.Context != CategoryRow {
		t.Fatalf("Classify(tr) = %+v, %v", rule, ok)
	}
	if _, ok := m.Classify("MyWidget"); ok {
		t.Fatalf("custom component must be unclassified")
	}
	if _, ok := m.Classify(""); ok {
		t.Fatalf("empty tag must be unclassified")
	}
}

func TestTransparentFlagIsRecorded(t *testing.T) {
	m := Default()
	for _, tag := range []string{"a", "ins", "del", "audio", "video"} {
		rule, ok := m.Classify(tag)
		if !ok || !rule.Transparent {
			t.Errorf("%s should carry the transparent marker", tag)
		}
	}
}
