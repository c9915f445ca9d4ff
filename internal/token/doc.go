// Package token defines lexical token kinds and trivia for marklint's
// markup-expression dialect.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - JSX-style raw text between tags is a single Text token; the lexer only
//     produces it in markup mode (driven by the parser).
//   - Tag and component names are plain identifiers; whether a name denotes a
//     known element is decided by the content model, not the lexer.
package token
