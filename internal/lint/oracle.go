// Package lint implements the type-aware rules. Each rule is a pure
// function from a syntax node plus a type oracle to at most one
// diagnostic; rules never mutate type state and every failed lookup is an
// abstain, not an error.
package lint

import (
	"typelint/internal/ast"
	"typelint/internal/source"
	"typelint/internal/types"
)

// Oracle is the type-resolution capability rules consume. sema.Checker
// implements it for real runs; tests may substitute fakes.
type Oracle interface {
	// TypeAt returns the static type of an expression, NoTypeID when the
	// expression did not resolve.
	TypeAt(ast.ExprID) types.TypeID
	// CallSignatures returns the overload set of a callable type, nil
	// for non-callable types.
	CallSignatures(types.TypeID) []types.Signature
	// ConstructSignatures returns the construct signature set of a
	// class type, nil for anything not constructible.
	ConstructSignatures(types.TypeID) []types.Signature
	// ChosenSignature returns the overload selected for a call site.
	ChosenSignature(call ast.ExprID) (types.Signature, bool)
	// TypeInterner exposes the interner owning the handles above.
	TypeInterner() *types.Interner
}

// Context bundles what a rule invocation may consult: the oracle, the
// syntax tree and which expressions sit in statement position.
type Context struct {
	Oracle  Oracle
	AST     *ast.Builder
	Strings *source.Interner

	stmtRoots map[ast.ExprID]struct{}
}

// NewContext prepares a rule context for one file. Statement-position
// information is collected up front so rules can answer positional
// questions from parent links alone.
func NewContext(o Oracle, b *ast.Builder, strs *source.Interner, fileID ast.FileID) *Context {
	ctx := &Context{
		Oracle:    o,
		AST:       b,
		Strings:   strs,
		stmtRoots: make(map[ast.ExprID]struct{}, 16),
	}
	if file := b.Files.Get(fileID); file != nil {
		for _, stmt := range file.Stmts {
			ctx.collectRoots(stmt)
		}
	}
	return ctx
}

// IsStmtRoot reports whether the expression is the root of an expression
// statement.
func (ctx *Context) IsStmtRoot(id ast.ExprID) bool {
	_, ok := ctx.stmtRoots[id]
	return ok
}

func (ctx *Context) collectRoots(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	stmt := ctx.AST.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := ctx.AST.Stmts.Expr(id)
		ctx.stmtRoots[data.Expr] = struct{}{}
		ctx.collectExprRoots(data.Expr)
	case ast.StmtReturn:
		data, _ := ctx.AST.Stmts.Return(id)
		ctx.collectExprRoots(data.Value)
	case ast.StmtBlock:
		data, _ := ctx.AST.Stmts.Block(id)
		for _, inner := range data.Stmts {
			ctx.collectRoots(inner)
		}
	case ast.StmtLet:
		data, _ := ctx.AST.Stmts.Let(id)
		ctx.collectExprRoots(data.Init)
	case ast.StmtFunc:
		data, _ := ctx.AST.Stmts.Func(id)
		for _, inner := range data.Body {
			ctx.collectRoots(inner)
		}
	case ast.StmtClass:
		data, _ := ctx.AST.Stmts.Class(id)
		for _, method := range data.Methods {
			for _, inner := range method.Body {
				ctx.collectRoots(inner)
			}
		}
	}
}

// collectExprRoots descends into inline function bodies, whose statements
// are reachable only through expression payloads.
func (ctx *Context) collectExprRoots(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	expr := ctx.AST.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprCall:
		data, _ := ctx.AST.Exprs.Call(id)
		ctx.collectExprRoots(data.Callee)
		for _, arg := range data.Args {
			ctx.collectExprRoots(arg)
		}
	case ast.ExprMember:
		data, _ := ctx.AST.Exprs.Member(id)
		ctx.collectExprRoots(data.Object)
	case ast.ExprBinary:
		data, _ := ctx.AST.Exprs.Binary(id)
		ctx.collectExprRoots(data.Left)
		ctx.collectExprRoots(data.Right)
	case ast.ExprGroup:
		data, _ := ctx.AST.Exprs.Group(id)
		ctx.collectExprRoots(data.Inner)
	case ast.ExprFunc:
		data, _ := ctx.AST.Exprs.Func(id)
		for _, inner := range data.Body {
			ctx.collectRoots(inner)
		}
		ctx.collectExprRoots(data.ExprBody)
	}
}
