package ast

import (
	"typelint/internal/source"
)

type Hints struct{ Files, Stmts, Exprs, Types uint }

// Builder owns every arena for one parse. It is the unit handed to sema
// and the lint runner.
type Builder struct {
	Files *Files
	Stmts *Stmts
	Exprs *Exprs
	Types *TypeExprs
}

func NewBuilder(hints Hints) *Builder {
	if hints.Files == 0 {
		hints.Files = 1 << 2
	}
	if hints.Stmts == 0 {
		hints.Stmts = 1 << 8
	}
	if hints.Exprs == 0 {
		hints.Exprs = 1 << 8
	}
	if hints.Types == 0 {
		hints.Types = 1 << 7
	}
	return &Builder{
		Files: NewFiles(hints.Files),
		Stmts: NewStmts(hints.Stmts),
		Exprs: NewExprs(hints.Exprs),
		Types: NewTypeExprs(hints.Types),
	}
}

func (b *Builder) NewFile(sp source.Span) FileID {
	return b.Files.New(sp)
}

func (b *Builder) PushStmt(file FileID, stmt StmtID) {
	f := b.Files.Get(file)
	f.Stmts = append(f.Stmts, stmt)
}
