package lexer

import (
	"fmt"

	"typelint/internal/diag"
	"typelint/internal/token"
)

// scanOperatorOrPunct scans operators and punctuation, longest match first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
		switch lx.cursor.Peek() {
		case '=':
			lx.cursor.Bump()
			kind = token.EqEq
		case '>':
			lx.cursor.Bump()
			kind = token.FatArrow
		}
	case '!':
		kind = token.Bang
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.BangEq
		}
	case '<':
		kind = token.Lt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.LtEq
		}
	case '>':
		kind = token.Gt
		if lx.cursor.Peek() == '=' {
			lx.cursor.Bump()
			kind = token.GtEq
		}
	case '&':
		if lx.cursor.Peek() == '&' {
			lx.cursor.Bump()
			kind = token.AndAnd
		}
	case '|':
		kind = token.Pipe
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			kind = token.OrOr
		}
	case '?':
		kind = token.Question
	case ':':
		kind = token.Colon
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && b1 == '.' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.DotDotDot
		}
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(start)
	if kind == token.Invalid {
		diag.ReportError(lx.reporter, diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", text))
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}
