// Package diag defines marklint's diagnostic model: codes, severities,
// the Diagnostic value, the Bag accumulator, and the Reporter contract
// used by the lexer, parser, and nesting checker.
package diag
