package lexer

import (
	"typelint/internal/diag"
	"typelint/internal/token"
)

// scanString scans a single- or double-quoted string literal. Escapes are
// consumed but not interpreted; lint rules never look inside strings.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
		if ch == '\\' {
			if !lx.cursor.EOF() {
				lx.cursor.Bump()
			}
			continue
		}
		if ch == quote {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: token.StringLit, Span: sp, Text: lx.cursor.Text(start)}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(start)}
}
