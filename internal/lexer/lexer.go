package lexer

import (
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/token"
)

// Lexer produces the token stream for a single file. Diagnostics go to the
// reporter; the stream itself always terminates with an EOF token.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"' || ch == '\'':
		return lx.scanString()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.Next()
		lx.look = &tok
	}
	return *lx.look
}

// Tokenize drains the lexer into a slice ending with EOF.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, reporter)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

// skipTrivia consumes whitespace, line comments and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' {
				return
			}
			switch b1 {
			case '/':
				for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
					lx.cursor.Bump()
				}
			case '*':
				lx.cursor.Bump()
				lx.cursor.Bump()
				for !lx.cursor.EOF() {
					if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
						lx.cursor.Bump()
						lx.cursor.Bump()
						break
					}
					lx.cursor.Bump()
				}
			default:
				return
			}
		default:
			return
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isDec(b byte) bool {
	return b >= '0' && b <= '9'
}

func isIdentStartByte(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}
