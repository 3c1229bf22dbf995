// Package token defines lexical token kinds for typelint source files.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Start..End).
//   - Built-in primitive type names (void, never, number, ...) are
//     identifiers. They are recognized by the semantic layer, not the lexer.
package token
