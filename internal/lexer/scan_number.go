package lexer

import (
	"typelint/internal/diag"
	"typelint/internal/token"
)

// scanNumber scans decimal literals with an optional fraction. Trailing
// identifier characters (e.g. "1x") make the literal malformed.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		diag.ReportError(lx.reporter, diag.LexBadNumber, sp, "malformed numeric literal")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.cursor.Text(start)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.cursor.Text(start)}
}
