package parser

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/token"
)

func (p *Parser) parseStmt() ast.StmtID {
	switch p.cur().Kind {
	case token.KwLet:
		return p.parseLet()
	case token.KwFunction:
		return p.parseFuncDecl()
	case token.KwClass:
		return p.parseClass()
	case token.KwReturn:
		return p.parseReturn()
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return ast.NoStmtID
	default:
		return p.parseExprStmt()
	}
}

// parseLet handles 'let name (: Type)? (= expr)? ;'.
func (p *Parser) parseLet() ast.StmtID {
	start := p.advance() // let

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return ast.NoStmtID
	}

	data := ast.StmtLetData{
		Name:     p.intern(name.Text),
		NameSpan: name.Span,
	}

	if p.eat(token.Colon) {
		data.Type = p.parseType()
	}
	if p.eat(token.Assign) {
		data.Init = p.parseExpr()
	}

	end := p.cur().Span
	p.expectSemicolon()
	return p.b.Stmts.NewLet(spanBetween(start.Span, end), data)
}

// parseFuncDecl handles 'function name(params) (: Type)? ({...} | ;)'.
// A trailing ';' instead of a body declares one overload signature.
func (p *Parser) parseFuncDecl() ast.StmtID {
	start := p.advance() // function

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return ast.NoStmtID
	}

	params := p.parseParamList()

	data := ast.StmtFuncData{
		Name:     p.intern(name.Text),
		NameSpan: name.Span,
		Params:   params,
	}
	if p.eat(token.Colon) {
		data.Result = p.parseType()
	}

	end := p.cur().Span
	if p.at(token.LBrace) {
		data.Body, end = p.parseBraceBody()
		data.HasBody = true
	} else {
		p.expectSemicolon()
	}
	return p.b.Stmts.NewFunc(spanBetween(start.Span, end), data)
}

// parseClass handles 'class Name { ctor | method | field ... }'.
func (p *Parser) parseClass() ast.StmtID {
	start := p.advance() // class

	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return ast.NoStmtID
	}

	data := ast.StmtClassData{
		Name:     p.intern(name.Text),
		NameSpan: name.Span,
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace); !ok {
		p.syncStmt()
		return ast.NoStmtID
	}

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		p.parseClassMember(&data)
		if p.pos == before {
			p.errUnexpected()
			p.advance()
		}
	}
	end, _ := p.expect(token.RBrace, diag.SynUnclosedBrace)
	return p.b.Stmts.NewClass(spanBetween(start.Span, end.Span), data)
}

func (p *Parser) parseClassMember(data *ast.StmtClassData) {
	switch {
	case p.at(token.KwConstructor):
		ctorTok := p.advance()
		params := p.parseParamList()
		span := ctorTok.Span
		if p.at(token.LBrace) {
			_, end := p.parseBraceBody()
			span = spanBetween(span, end)
		} else {
			p.expectSemicolon()
		}
		data.Ctors = append(data.Ctors, ast.ClassCtor{Params: params, Span: span})

	case p.at(token.Ident):
		name := p.advance()
		if p.at(token.LParen) {
			method := ast.ClassMethod{
				Name:   p.intern(name.Text),
				Params: p.parseParamList(),
				Span:   name.Span,
			}
			if p.eat(token.Colon) {
				method.Result = p.parseType()
			}
			if p.at(token.LBrace) {
				body, end := p.parseBraceBody()
				method.Body = body
				method.Span = spanBetween(method.Span, end)
			} else {
				p.expectSemicolon()
			}
			data.Methods = append(data.Methods, method)
			return
		}
		field := ast.ClassField{Name: p.intern(name.Text), Span: name.Span}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon); ok {
			field.Type = p.parseType()
		}
		p.expectSemicolon()
		data.Fields = append(data.Fields, field)

	case p.eat(token.Semicolon):
		// stray ';' inside a class body is tolerated
	}
}

// parseReturn handles 'return expr? ;'.
func (p *Parser) parseReturn() ast.StmtID {
	start := p.advance() // return

	value := ast.NoExprID
	if !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		value = p.parseExpr()
	}
	end := p.cur().Span
	p.expectSemicolon()
	return p.b.Stmts.NewReturn(spanBetween(start.Span, end), value)
}

// parseBlock handles '{ stmt* }' as a statement.
func (p *Parser) parseBlock() ast.StmtID {
	startSpan := p.cur().Span
	stmts, end := p.parseBraceBody()
	return p.b.Stmts.NewBlock(spanBetween(startSpan, end), stmts)
}

// parseBraceBody consumes '{ stmt* }' and returns the statements plus the
// span of the closing brace.
func (p *Parser) parseBraceBody() ([]ast.StmtID, source.Span) {
	p.expect(token.LBrace, diag.SynUnclosedBrace)
	var stmts []ast.StmtID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		before := p.pos
		stmt := p.parseStmt()
		if stmt.IsValid() {
			stmts = append(stmts, stmt)
		}
		if p.pos == before {
			p.errUnexpected()
			p.advance()
		}
	}
	end, _ := p.expect(token.RBrace, diag.SynUnclosedBrace)
	return stmts, end.Span
}

func (p *Parser) parseExprStmt() ast.StmtID {
	start := p.cur().Span
	expr := p.parseExpr()
	if !expr.IsValid() {
		p.syncStmt()
		return ast.NoStmtID
	}
	end := p.cur().Span
	p.expectSemicolon()
	return p.b.Stmts.NewExpr(spanBetween(start, end), expr)
}

// parseParamList consumes '( param, ... )'.
func (p *Parser) parseParamList() []ast.ParamID {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen); !ok {
		return nil
	}
	var params []ast.ParamID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param, ok := p.parseParam()
		if !ok {
			break
		}
		params = append(params, param)
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	return params
}

func (p *Parser) parseParam() (ast.ParamID, bool) {
	rest := p.eat(token.DotDotDot)
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		return ast.NoParamID, false
	}
	param := ast.Param{
		Name: p.intern(name.Text),
		Span: name.Span,
		Rest: rest,
	}
	if p.eat(token.Colon) {
		param.Type = p.parseType()
	}
	return p.b.Exprs.NewParam(param), true
}
