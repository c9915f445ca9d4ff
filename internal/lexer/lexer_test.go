package lexer

import (
	"testing"

	"marklint/internal/diag"
	"marklint/internal/source"
	"marklint/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mx", []byte(src)))
	lx := New(file, Options{})

	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
		if len(out) > 1000 {
			t.Fatalf("lexer did not terminate")
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func expectKinds(t *testing.T, src string, want ...token.Kind) {
	t.Helper()
	got := kinds(lexAll(t, src))
	want = append(want, token.EOF)
	if len(got) != len(want) {
		t.Fatalf("%q: expected %v, got %v", src, want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%q: token %d: expected %v, got %v", src, i, want[i], got[i])
		}
	}
}

func TestLexSelfClosingElement(t *testing.T) {
	expectKinds(t, "<br/>", token.Lt, token.Ident, token.SlashGt)
}

func TestLexElementPair(t *testing.T) {
	expectKinds(t, "<td></td>",
		token.Lt, token.Ident, token.Gt,
		token.LtSlash, token.Ident, token.Gt)
}

func TestLexCreateCall(t *testing.T) {
	expectKinds(t, `h("td", null);`,
		token.Ident, token.LParen, token.StringLit, token.Comma,
		token.KwNull, token.RParen, token.Semicolon)
}

func TestLexTernaryAndLogical(t *testing.T) {
	expectKinds(t, "a ? b : c && d || !e",
		token.Ident, token.Question, token.Ident, token.Colon,
		token.Ident, token.AndAnd, token.Ident, token.OrOr,
		token.Bang, token.Ident)
}

func TestLexArrowFn(t *testing.T) {
	expectKinds(t, "(x) => x",
		token.LParen, token.Ident, token.RParen, token.FatArrow, token.Ident)
}

func TestLexHyphenatedTagName(t *testing.T) {
	toks := lexAll(t, "<my-widget/>")
	if toks[1].Kind != token.Ident || toks[1].Text != "my-widget" {
		t.Fatalf("expected one ident my-widget, got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexNumbers(t *testing.T) {
	toks := lexAll(t, "42 3.14")
	if toks[0].Text != "42" || toks[0].Kind != token.NumberLit {
		t.Fatalf("int literal: %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Text != "3.14" || toks[1].Kind != token.NumberLit {
		t.Fatalf("float literal: %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexStringEscapes(t *testing.T) {
	toks := lexAll(t, `"a\"b" 'c'`)
	if toks[0].Kind != token.StringLit || toks[0].Text != `"a\"b"` {
		t.Fatalf("double-quoted: %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.StringLit || toks[1].Text != "'c'" {
		t.Fatalf("single-quoted: %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestLexUnterminatedString(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mx", []byte("\"abc\n")))
	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: &diag.BagReporter{Bag: bag}})

	tok := lx.Next()
	if tok.Kind != token.Invalid {
		t.Fatalf("expected Invalid token, got %v", tok.Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Fatalf("expected LexUnterminatedString diagnostic")
	}
}

func TestLexLeadingTrivia(t *testing.T) {
	toks := lexAll(t, "  // note\nlet")
	if toks[0].Kind != token.KwLet {
		t.Fatalf("expected let, got %v", toks[0].Kind)
	}
	if len(toks[0].Leading) != 3 {
		t.Fatalf("expected 3 trivia pieces, got %d", len(toks[0].Leading))
	}
	if toks[0].Leading[1].Kind != token.TriviaLineComment {
		t.Fatalf("expected line comment trivia, got %v", toks[0].Leading[1].Kind)
	}
}

func TestLexBlockCommentNestingNotSupported(t *testing.T) {
	toks := lexAll(t, "/* a */ x")
	if toks[0].Kind != token.Ident || toks[0].Text != "x" {
		t.Fatalf("expected x after block comment, got %v %q", toks[0].Kind, toks[0].Text)
	}
}

func TestScanTextStopsAtTagAndBrace(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mx", []byte("<p>hello {name}</p>")))
	lx := New(file, Options{})

	// <p>
	for i := 0; i < 3; i++ {
		lx.Next()
	}
	text := lx.ScanText()
	if text.Kind != token.Text || text.Text != "hello " {
		t.Fatalf("expected text %q, got %v %q", "hello ", text.Kind, text.Text)
	}
	if lx.Peek().Kind != token.LBrace {
		t.Fatalf("expected LBrace after text")
	}
}

func TestScanTextEmptyWithBufferedStructuralToken(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mx", []byte("<ul><li/></ul>")))
	lx := New(file, Options{})

	for i := 0; i < 3; i++ {
		lx.Next()
	}
	lx.Peek() // buffer the '<'
	text := lx.ScanText()
	if text.Kind != token.Text || text.Text != "" {
		t.Fatalf("expected empty text, got %q", text.Text)
	}
	if lx.Next().Kind != token.Lt {
		t.Fatalf("buffered token lost")
	}
}

func TestLexEOFIsSticky(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.mx", nil))
	lx := New(file, Options{})
	for i := 0; i < 3; i++ {
		if lx.Next().Kind != token.EOF {
			t.Fatalf("expected EOF")
		}
	}
}
