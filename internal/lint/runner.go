package lint

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
)

// Run applies the rules to every expression in the file, forwarding each
// produced diagnostic to the reporter immediately. Re-running over the
// same checked file yields the same diagnostics: rules hold no state and
// the oracle is read-only.
func Run(o Oracle, b *ast.Builder, strs *source.Interner, fileID ast.FileID, rules []Rule, reporter diag.Reporter) {
	if len(rules) == 0 {
		return
	}
	ctx := NewContext(o, b, strs, fileID)
	file := b.Files.Get(fileID)
	if file == nil {
		return
	}
	r := runner{ctx: ctx, rules: rules, reporter: reporter}
	for _, stmt := range file.Stmts {
		r.walkStmt(stmt)
	}
}

type runner struct {
	ctx      *Context
	rules    []Rule
	reporter diag.Reporter
}

func (r *runner) walkStmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	b := r.ctx.AST
	stmt := b.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := b.Stmts.Expr(id)
		r.walkExpr(data.Expr)
	case ast.StmtReturn:
		data, _ := b.Stmts.Return(id)
		r.walkExpr(data.Value)
	case ast.StmtBlock:
		data, _ := b.Stmts.Block(id)
		for _, inner := range data.Stmts {
			r.walkStmt(inner)
		}
	case ast.StmtLet:
		data, _ := b.Stmts.Let(id)
		r.walkExpr(data.Init)
	case ast.StmtFunc:
		data, _ := b.Stmts.Func(id)
		for _, inner := range data.Body {
			r.walkStmt(inner)
		}
	case ast.StmtClass:
		data, _ := b.Stmts.Class(id)
		for _, method := range data.Methods {
			for _, inner := range method.Body {
				r.walkStmt(inner)
			}
		}
	}
}

func (r *runner) walkExpr(id ast.ExprID) {
	if !id.IsValid() {
		return
	}
	for _, rule := range r.rules {
		if d, ok := rule.Check(r.ctx, id); ok {
			r.reporter.Report(d.Code, d.Severity, d.Primary, d.Message, d.Notes)
		}
	}
	b := r.ctx.AST
	expr := b.Exprs.Get(id)
	switch expr.Kind {
	case ast.ExprCall:
		data, _ := b.Exprs.Call(id)
		r.walkExpr(data.Callee)
		for _, arg := range data.Args {
			r.walkExpr(arg)
		}
	case ast.ExprMember:
		data, _ := b.Exprs.Member(id)
		r.walkExpr(data.Object)
	case ast.ExprBinary:
		data, _ := b.Exprs.Binary(id)
		r.walkExpr(data.Left)
		r.walkExpr(data.Right)
	case ast.ExprGroup:
		data, _ := b.Exprs.Group(id)
		r.walkExpr(data.Inner)
	case ast.ExprFunc:
		data, _ := b.Exprs.Func(id)
		for _, inner := range data.Body {
			r.walkStmt(inner)
		}
		r.walkExpr(data.ExprBody)
	}
}
