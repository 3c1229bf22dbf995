package parser

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/token"
)

// parseType parses a type annotation: unions of postfix types.
func (p *Parser) parseType() ast.TypeExprID {
	first := p.parseTypePostfix()
	if !first.IsValid() {
		return ast.NoTypeExprID
	}
	if !p.at(token.Pipe) {
		return first
	}
	members := []ast.TypeExprID{first}
	for p.eat(token.Pipe) {
		member := p.parseTypePostfix()
		if !member.IsValid() {
			break
		}
		members = append(members, member)
	}
	span := spanBetween(p.b.Types.Get(members[0]).Span, p.b.Types.Get(members[len(members)-1]).Span)
	return p.b.Types.NewUnion(span, members)
}

// parseTypePostfix parses a primary type followed by '[]' suffixes, which
// desugar to Array<T>.
func (p *Parser) parseTypePostfix() ast.TypeExprID {
	ty := p.parseTypePrimary()
	if !ty.IsValid() {
		return ast.NoTypeExprID
	}
	for p.at(token.LBracket) && p.peekAt(1).Kind == token.RBracket {
		p.advance()
		closing := p.advance()
		span := spanBetween(p.b.Types.Get(ty).Span, closing.Span)
		ty = p.b.Types.NewName(span, p.intern("Array"), []ast.TypeExprID{ty})
	}
	return ty
}

func (p *Parser) parseTypePrimary() ast.TypeExprID {
	tok := p.cur()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		var args []ast.TypeExprID
		end := tok.Span
		if p.at(token.Lt) {
			args, end = p.parseTypeArgs()
		}
		return p.b.Types.NewName(spanBetween(tok.Span, end), p.intern(tok.Text), args)

	case token.KwUndefined, token.KwNull:
		// Both double as type names.
		p.advance()
		return p.b.Types.NewName(tok.Span, p.intern(tok.Text), nil)

	case token.LParen:
		if p.isArrowAhead() {
			return p.parseTypeFn()
		}
		p.advance()
		inner := p.parseType()
		p.expect(token.RParen, diag.SynUnclosedParen)
		return inner

	default:
		diag.ReportError(p.reporter, diag.SynExpectType, tok.Span, "expected type")
		return ast.NoTypeExprID
	}
}

// parseTypeArgs consumes '< Type, ... >' and returns the arguments plus the
// span of the closing '>'.
func (p *Parser) parseTypeArgs() ([]ast.TypeExprID, source.Span) {
	p.advance() // <
	var args []ast.TypeExprID
	for !p.at(token.Gt) && !p.at(token.EOF) {
		arg := p.parseType()
		if !arg.IsValid() {
			break
		}
		args = append(args, arg)
		if !p.eat(token.Comma) {
			break
		}
	}
	closing, _ := p.expect(token.Gt, diag.SynExpectType)
	return args, closing.Span
}

// parseTypeFn parses '(p: T, ...) => R'.
func (p *Parser) parseTypeFn() ast.TypeExprID {
	start := p.cur().Span
	params := p.parseParamList()
	p.expect(token.FatArrow, diag.SynExpectArrow)
	result := p.parseType()
	end := start
	if result.IsValid() {
		end = p.b.Types.Get(result).Span
	}
	return p.b.Types.NewFn(spanBetween(start, end), params, result)
}
