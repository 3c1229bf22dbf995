package parser

import (
	"fmt"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/lexer"
	"typelint/internal/source"
	"typelint/internal/token"
)

// Parser turns a token stream into AST nodes owned by a Builder. The token
// slice is materialized up front: arrow-function detection needs unbounded
// lookahead to the matching ')'.
type Parser struct {
	b        *ast.Builder
	strs     *source.Interner
	file     *source.File
	toks     []token.Token
	pos      int
	reporter diag.Reporter
}

// ParseFile lexes and parses a whole file, returning the AST file node.
// Syntax errors are reported and recovered from; the resulting tree covers
// whatever could be parsed.
func ParseFile(b *ast.Builder, strs *source.Interner, file *source.File, reporter diag.Reporter) ast.FileID {
	p := &Parser{
		b:        b,
		strs:     strs,
		file:     file,
		toks:     lexer.Tokenize(file, reporter),
		reporter: reporter,
	}
	return p.parseFile()
}

func (p *Parser) parseFile() ast.FileID {
	fileSpan := source.Span{File: p.file.ID, Start: 0, End: uint32(len(p.file.Content))}
	fileID := p.b.NewFile(fileSpan)
	for !p.at(token.EOF) {
		before := p.pos
		stmt := p.parseStmt()
		if stmt.IsValid() {
			p.b.PushStmt(fileID, stmt)
		}
		if p.pos == before {
			// No progress: drop the offending token to guarantee termination.
			p.errUnexpected()
			p.advance()
		}
	}
	return fileID
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	idx := p.pos + n
	if idx >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[idx]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return tok
}

// eat consumes the current token when it matches.
func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes the expected token or reports the given code at the
// current position.
func (p *Parser) expect(kind token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	diag.ReportError(p.reporter, code, p.cur().Span,
		fmt.Sprintf("expected %q, found %q", kind.String(), p.cur().Text))
	return p.cur(), false
}

// expectSemicolon reports a missing ';' but lets the caller continue as if
// one was present.
func (p *Parser) expectSemicolon() {
	if !p.eat(token.Semicolon) {
		diag.ReportError(p.reporter, diag.SynExpectSemicolon, p.cur().Span, "expected ';'")
	}
}

func (p *Parser) errUnexpected() {
	diag.ReportError(p.reporter, diag.SynUnexpectedToken, p.cur().Span,
		fmt.Sprintf("unexpected token %q", p.cur().Text))
}

func (p *Parser) intern(text string) source.StringID {
	return p.strs.Intern(text)
}

// spanBetween covers the range from the first to the last token span.
func spanBetween(from, to source.Span) source.Span {
	return from.Cover(to)
}

// syncStmt skips tokens until a likely statement boundary.
func (p *Parser) syncStmt() {
	depth := 0
	for !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.Semicolon:
			if depth == 0 {
				p.advance()
				return
			}
		case token.LBrace:
			depth++
		case token.RBrace:
			if depth == 0 {
				return
			}
			depth--
		}
		p.advance()
	}
}
