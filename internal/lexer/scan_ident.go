package lexer

import (
	"unicode"

	"golang.org/x/text/unicode/norm"

	"typelint/internal/token"
)

const utf8RuneSelf = 0x80

// scanIdentOrKeyword scans an identifier and classifies keywords via
// LookupKeyword. Token.Text is the exact source slice for ASCII
// identifiers; non-ASCII identifiers are NFC-normalized so that visually
// identical names compare equal downstream.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.cursor.PeekRune()
	if sz == 0 {
		return token.Token{Kind: token.Invalid, Span: lx.cursor.SpanFrom(start)}
	}

	ascii := true
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
	} else {
		if !unicode.IsLetter(r) {
			return lx.scanOperatorOrPunct()
		}
		ascii = false
	}
	lx.cursor.BumpRune()

	for {
		r2, sz2 := lx.cursor.PeekRune()
		if sz2 == 0 {
			break
		}
		if r2 < utf8RuneSelf {
			if !isIdentContinueByte(byte(r2)) {
				break
			}
		} else {
			if !unicode.IsLetter(r2) && !unicode.IsDigit(r2) {
				break
			}
			ascii = false
		}
		lx.cursor.BumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.cursor.Text(start)
	if !ascii {
		text = norm.NFC.String(text)
	}

	if kw, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: kw, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}
