package nesting

import (
	"testing"

	"marklint/internal/ast"
	"marklint/internal/content"
	"marklint/internal/diag"
	"marklint/internal/lexer"
	"marklint/internal/parser"
	"marklint/internal/source"
)

// check parses src and runs the checker, returning the collected bag.
// Syntax errors fail the test: these fixtures must be well-formed.
func check(t *testing.T, src string) *diag.Bag {
	t.Helper()
	b, bag := checkTree(t, src)
	_ = b
	return bag
}

func checkTree(t *testing.T, src string) (*ast.Builder, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mx", []byte(src))

	synBag := diag.NewBag(64)
	lx := lexer.New(fs.Get(id), lexer.Options{Reporter: &diag.BagReporter{Bag: synBag}})
	b := ast.NewBuilder(ast.Hints{}, nil)
	parser.ParseFile(lx, b, parser.Options{Reporter: &diag.BagReporter{Bag: synBag}})
	if synBag.HasErrors() {
		t.Fatalf("fixture has syntax errors: %v", synBag.Items())
	}

	bag := diag.NewBag(64)
	Check(b, Options{Reporter: &diag.BagReporter{Bag: bag}})
	return b, bag
}

func codes(bag *diag.Bag) []diag.Code {
	out := make([]diag.Code, 0, bag.Len())
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestRowDirectlyInTableIsValid(t *testing.T) {
	bag := check(t, `<table><tr><td/></tr></table>`)
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestCellDirectlyInTableIsInvalid(t *testing.T) {
	bag := check(t, `<table><td/></table>`)
	if bag.Len() != 1 {
		t.Fatalf("want exactly one diagnostic, got %v", bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.NestInvalidNesting {
		t.Fatalf("code = %v, want NestInvalidNesting", d.Code)
	}
	if d.Message != "'td' is not allowed inside 'table'" {
		t.Fatalf("message = %q", d.Message)
	}
	if len(d.Notes) != 1 || d.Notes[0].Msg != "parent element 'table' opened here" {
		t.Fatalf("notes = %v", d.Notes)
	}
}

func TestConditionalWrapperIsSkipped(t *testing.T) {
	// The ternary between tr and td is not a structural boundary.
	bag := check(t, `<table><tr>{cond ? <td/> : <th/>}</tr></table>`)
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestMapCallSiteIsSkipped(t *testing.T) {
	// The map call produces siblings in place of itself: the cells'
	// logical parent is the table, which rejects them.
	bag := check(t, `<table>{items.map(item => <td/>)}</table>`)
	if bag.Len() != 1 {
		t.Fatalf("want one diagnostic, got %v", bag.Items())
	}
	if bag.Items()[0].Code != diag.NestInvalidNesting {
		t.Fatalf("code = %v", bag.Items()[0].Code)
	}
}

func TestMapCallbackUnderRowIsValid(t *testing.T) {
	bag := check(t, `<table><tr>{items.map(item => <td/>)}</tr></table>`)
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestUnknownTagIsNeverReported(t *testing.T) {
	bag := check(t, `<table><my-grid-row/></table>`)
	if bag.Len() != 0 {
		t.Fatalf("custom tags must not be reported, got %v", bag.Items())
	}
	// Unknown in the parent position as well.
	bag = check(t, `<my-widget><td/></my-widget>`)
	if bag.Len() != 0 {
		t.Fatalf("unknown parent must not be reported, got %v", bag.Items())
	}
}

func TestDynamicCreationTagIsNeverReported(t *testing.T) {
	bag := check(t, `<table>{h(tagName, null)}</table>`)
	if bag.Len() != 0 {
		t.Fatalf("dynamic tag must not be reported, got %v", bag.Items())
	}
}

func TestCreationCalls(t *testing.T) {
	// h("td", ...) directly under h("table", ...): invalid pairing.
	bag := check(t, `h("table", null, h("td", null))`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.NestInvalidNesting {
		t.Fatalf("got %v", bag.Items())
	}

	bag = check(t, `h("table", null, h("tr", null, h("td", null)))`)
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestCreationCallMemberCallee(t *testing.T) {
	bag := check(t, `React.createElement("table", null, React.createElement("td", null))`)
	if bag.Len() != 1 {
		t.Fatalf("member-callee creation calls must be recognized, got %v", bag.Items())
	}
}

func TestMixedLiteralAndCreationCall(t *testing.T) {
	bag := check(t, `<tr>{h("td", null)}</tr>`)
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestVoidParent(t *testing.T) {
	bag := check(t, `<br><span/></br>`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.NestVoidParent {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestInteractiveChild(t *testing.T) {
	bag := check(t, `<a href="x"><button>hi</button></a>`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.NestInteractiveChild {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestExcludedParent(t *testing.T) {
	bag := check(t, `<form><form/></form>`)
	if bag.Len() != 1 || bag.Items()[0].Code != diag.NestExcludedParent {
		t.Fatalf("got %v", bag.Items())
	}
}

func TestRootElementIsSkipped(t *testing.T) {
	// No enclosing element: nothing to judge against.
	bag := check(t, `<td/>`)
	if bag.Len() != 0 {
		t.Fatalf("root element must be skipped, got %v", bag.Items())
	}
}

func TestLetBindingIsTransparent(t *testing.T) {
	// The binding does not anchor the element anywhere structural.
	bag := check(t, "let cell = <td/>;\nreturn cell;")
	if bag.Len() != 0 {
		t.Fatalf("expected clean run, got %v", bag.Items())
	}
}

func TestArrayChildrenResolveThroughArray(t *testing.T) {
	bag := check(t, `<table>{[<tr/>, <tr/>]}</table>`)
	if bag.Len() != 0 {
		t.Fatalf("rows via array must be valid, got %v", bag.Items())
	}
	bag = check(t, `<table>{[<td/>]}</table>`)
	if bag.Len() != 1 {
		t.Fatalf("cell via array must be invalid, got %v", bag.Items())
	}
}

func TestUnknownFunctionCallStopsTheWalk(t *testing.T) {
	// wrap() may place its argument anywhere; never guess.
	bag := check(t, `<table>{wrap(<td/>)}</table>`)
	if bag.Len() != 0 {
		t.Fatalf("argument of an unknown call must be skipped, got %v", bag.Items())
	}
}

func TestAttributeValueIsNotAChild(t *testing.T) {
	// An element in an attribute is rendered elsewhere, not nested here.
	bag := check(t, `<table footer={<td/>}><tr><td/></tr></table>`)
	if bag.Len() != 0 {
		t.Fatalf("attribute values must not be treated as children, got %v", bag.Items())
	}
}

func TestDeeplyStackedWrappers(t *testing.T) {
	bag := check(t, `<table><tr>{cond ? (flag && (!other ? <td/> : <th/>)) : <th/>}</tr></table>`)
	if bag.Len() != 0 {
		t.Fatalf("stacked wrappers must all be skipped, got %v", bag.Items())
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mx", []byte(`<table><td/><td/></table>`))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	parser.ParseFile(lx, b, parser.Options{})

	first := diag.NewBag(64)
	Check(b, Options{Reporter: &diag.BagReporter{Bag: first}})
	second := diag.NewBag(64)
	Check(b, Options{Reporter: &diag.BagReporter{Bag: second}})

	if first.Len() != 2 || second.Len() != first.Len() {
		t.Fatalf("runs differ: %d vs %d", first.Len(), second.Len())
	}
	for i := range first.Items() {
		a, b := first.Items()[i], second.Items()[i]
		if a.Code != b.Code || a.Message != b.Message || a.Primary != b.Primary {
			t.Fatalf("diagnostic %d differs: %+v vs %+v", i, a, b)
		}
	}
}

func TestCustomCreatorNames(t *testing.T) {
	bag := diag.NewBag(64)
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mx", []byte(`make("table", null, make("td", null))`))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	parser.ParseFile(lx, b, parser.Options{})

	Check(b, Options{Reporter: &diag.BagReporter{Bag: bag}, Creators: []string{"make"}})
	if bag.Len() != 1 {
		t.Fatalf("custom creator not honored, got %v", bag.Items())
	}

	// With the default creators the same tree is opaque.
	other := diag.NewBag(64)
	Check(b, Options{Reporter: &diag.BagReporter{Bag: other}})
	if other.Len() != 0 {
		t.Fatalf("make() should be opaque by default, got %v", other.Items())
	}
}

func TestCustomModel(t *testing.T) {
	model := content.NewModel([]content.Rule{
		{Name: "grid", Context: content.CategoryTable, AllowedParents: content.Parents(content.CategoryFlow)},
		{Name: "cell", Context: content.CategoryFlow, AllowedParents: content.Parents(content.CategoryRow)},
	})
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.mx", []byte(`<grid><cell/></grid>`))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	b := ast.NewBuilder(ast.Hints{}, nil)
	parser.ParseFile(lx, b, parser.Options{})

	bag := diag.NewBag(64)
	Check(b, Options{Reporter: &diag.BagReporter{Bag: bag}, Model: model})
	if bag.Len() != 1 {
		t.Fatalf("custom model not honored, got %v", bag.Items())
	}
}

func TestIsValidNestingFacade(t *testing.T) {
	if got := IsValidNesting("table", "tr"); got != content.VerdictValid {
		t.Fatalf("table>tr = %v", got)
	}
	if got := IsValidNesting("table", "td"); got != content.VerdictInvalid {
		t.Fatalf("table>td = %v", got)
	}
	if got := IsValidNesting("table", "x-row"); got != content.VerdictUnknown {
		t.Fatalf("table>x-row = %v", got)
	}
}
