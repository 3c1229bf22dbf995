package parser

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/token"
)

// Binding powers, low to high. Unary and assignment forms do not exist in
// the language, so the ladder starts at '||'.
const (
	precNone = iota
	precOr
	precAnd
	precEquality
	precRelational
	precAdditive
	precMultiplicative
)

func binaryPrec(kind token.Kind) int {
	switch kind {
	case token.OrOr:
		return precOr
	case token.AndAnd:
		return precAnd
	case token.EqEq, token.BangEq:
		return precEquality
	case token.Lt, token.LtEq, token.Gt, token.GtEq, token.KwInstanceof:
		return precRelational
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	default:
		return precNone
	}
}

func binaryOp(kind token.Kind) ast.ExprBinaryOp {
	switch kind {
	case token.OrOr:
		return ast.BinOr
	case token.AndAnd:
		return ast.BinAnd
	case token.EqEq:
		return ast.BinEq
	case token.BangEq:
		return ast.BinNeq
	case token.Lt:
		return ast.BinLt
	case token.LtEq:
		return ast.BinLtEq
	case token.Gt:
		return ast.BinGt
	case token.GtEq:
		return ast.BinGtEq
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	case token.Percent:
		return ast.BinMod
	case token.KwInstanceof:
		return ast.BinInstanceof
	default:
		return ast.BinAdd
	}
}

func (p *Parser) parseExpr() ast.ExprID {
	return p.parseBinary(precNone)
}

func (p *Parser) parseBinary(minPrec int) ast.ExprID {
	left := p.parsePostfix()
	if !left.IsValid() {
		return ast.NoExprID
	}
	for {
		prec := binaryPrec(p.cur().Kind)
		if prec <= minPrec {
			return left
		}
		opTok := p.advance()
		right := p.parseBinary(prec)
		if !right.IsValid() {
			return left
		}
		span := spanBetween(p.b.Exprs.Get(left).Span, p.b.Exprs.Get(right).Span)
		left = p.b.Exprs.NewBinary(span, binaryOp(opTok.Kind), left, right)
	}
}

// parsePostfix parses a primary expression followed by any chain of member
// accesses and call argument lists.
func (p *Parser) parsePostfix() ast.ExprID {
	expr := p.parsePrimary()
	if !expr.IsValid() {
		return ast.NoExprID
	}
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
			if !ok {
				return expr
			}
			span := spanBetween(p.b.Exprs.Get(expr).Span, name.Span)
			expr = p.b.Exprs.NewMember(span, expr, p.intern(name.Text), name.Span)
		case token.LParen:
			p.advance()
			var args []ast.ExprID
			for !p.at(token.RParen) && !p.at(token.EOF) {
				arg := p.parseExpr()
				if !arg.IsValid() {
					break
				}
				args = append(args, arg)
				if !p.eat(token.Comma) {
					break
				}
			}
			closing, _ := p.expect(token.RParen, diag.SynUnclosedParen)
			span := spanBetween(p.b.Exprs.Get(expr).Span, closing.Span)
			expr = p.b.Exprs.NewCall(span, expr, args)
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.cur()
	switch tok.Kind {
	case token.NumberLit:
		p.advance()
		return p.b.Exprs.NewLiteral(tok.Span, ast.LitNumber, p.intern(tok.Text))
	case token.StringLit:
		p.advance()
		return p.b.Exprs.NewLiteral(tok.Span, ast.LitString, p.intern(tok.Text))
	case token.KwTrue, token.KwFalse:
		p.advance()
		return p.b.Exprs.NewLiteral(tok.Span, ast.LitBool, p.intern(tok.Text))
	case token.KwNull:
		p.advance()
		return p.b.Exprs.NewLiteral(tok.Span, ast.LitNull, p.intern(tok.Text))
	case token.KwUndefined:
		p.advance()
		return p.b.Exprs.NewLiteral(tok.Span, ast.LitUndefined, p.intern(tok.Text))
	case token.Ident:
		// 'x => body' is an arrow function with a single untyped parameter.
		if p.peekAt(1).Kind == token.FatArrow {
			return p.parseArrowBare()
		}
		p.advance()
		return p.b.Exprs.NewIdent(tok.Span, p.intern(tok.Text))
	case token.KwFunction:
		return p.parseFuncExpr()
	case token.LParen:
		if p.isArrowAhead() {
			return p.parseArrowParen()
		}
		p.advance()
		inner := p.parseExpr()
		closing, _ := p.expect(token.RParen, diag.SynUnclosedParen)
		if !inner.IsValid() {
			return ast.NoExprID
		}
		return p.b.Exprs.NewGroup(spanBetween(tok.Span, closing.Span), inner)
	default:
		diag.ReportError(p.reporter, diag.SynExpectExpression, tok.Span,
			"expected expression")
		return ast.NoExprID
	}
}

// isArrowAhead scans from the current '(' to its matching ')' and reports
// whether '=>' follows. Nothing is consumed.
func (p *Parser) isArrowAhead() bool {
	depth := 0
	for i := 0; ; i++ {
		switch p.peekAt(i).Kind {
		case token.LParen:
			depth++
		case token.RParen:
			depth--
			if depth == 0 {
				return p.peekAt(i+1).Kind == token.FatArrow
			}
		case token.EOF:
			return false
		}
	}
}

// parseArrowBare parses 'x => body'.
func (p *Parser) parseArrowBare() ast.ExprID {
	name := p.advance()
	param := p.b.Exprs.NewParam(ast.Param{
		Name: p.intern(name.Text),
		Span: name.Span,
	})
	p.expect(token.FatArrow, diag.SynExpectArrow)
	return p.parseArrowTail(name.Span, []ast.ParamID{param}, ast.NoTypeExprID)
}

// parseArrowParen parses '(params) (: Type)? => body'.
func (p *Parser) parseArrowParen() ast.ExprID {
	start := p.cur().Span
	params := p.parseParamList()
	result := ast.NoTypeExprID
	if p.eat(token.Colon) {
		result = p.parseType()
	}
	p.expect(token.FatArrow, diag.SynExpectArrow)
	return p.parseArrowTail(start, params, result)
}

func (p *Parser) parseArrowTail(start source.Span, params []ast.ParamID, result ast.TypeExprID) ast.ExprID {
	data := ast.ExprFuncData{
		Arrow:  true,
		Params: params,
		Result: result,
	}
	end := p.cur().Span
	if p.at(token.LBrace) {
		body, bodyEnd := p.parseBraceBody()
		data.Body = body
		data.HasBlock = true
		end = bodyEnd
	} else {
		data.ExprBody = p.parseExpr()
		if data.ExprBody.IsValid() {
			end = p.b.Exprs.Get(data.ExprBody).Span
		}
	}
	return p.b.Exprs.NewFunc(spanBetween(start, end), data)
}

// parseFuncExpr parses 'function (params) (: Type)? { body }'.
func (p *Parser) parseFuncExpr() ast.ExprID {
	start := p.advance() // function
	data := ast.ExprFuncData{
		Params: p.parseParamList(),
	}
	if p.eat(token.Colon) {
		data.Result = p.parseType()
	}
	body, end := p.parseBraceBody()
	data.Body = body
	data.HasBlock = true
	return p.b.Exprs.NewFunc(spanBetween(start.Span, end), data)
}
