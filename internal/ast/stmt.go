package ast

import (
	"typelint/internal/source"
)

// StmtKind enumerates statement and declaration kinds. Declarations are
// statements here; a file is just an ordered statement list.
type StmtKind uint8

const (
	// StmtExpr represents an expression statement.
	StmtExpr StmtKind = iota
	// StmtReturn represents a return statement.
	StmtReturn
	// StmtBlock represents a braced statement list.
	StmtBlock
	// StmtLet represents a let declaration.
	StmtLet
	// StmtFunc represents a function declaration (possibly a bodiless
	// overload signature).
	StmtFunc
	// StmtClass represents a class declaration.
	StmtClass
)

// Stmt represents a statement node in the AST.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

type StmtExprData struct {
	Expr ExprID
}

type StmtReturnData struct {
	Value ExprID // NoExprID for a bare return
}

type StmtBlockData struct {
	Stmts []StmtID
}

type StmtLetData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     TypeExprID // NoTypeExprID when unannotated
	Init     ExprID     // NoExprID when absent
}

type StmtFuncData struct {
	Name     source.StringID
	NameSpan source.Span
	Params   []ParamID
	Result   TypeExprID
	Body     []StmtID
	HasBody  bool
}

// ClassCtor describes one constructor overload of a class.
type ClassCtor struct {
	Params []ParamID
	Span   source.Span
}

// ClassField describes a declared field.
type ClassField struct {
	Name source.StringID
	Type TypeExprID
	Span source.Span
}

// ClassMethod describes a declared method.
type ClassMethod struct {
	Name   source.StringID
	Params []ParamID
	Result TypeExprID
	Body   []StmtID
	Span   source.Span
}

type StmtClassData struct {
	Name     source.StringID
	NameSpan source.Span
	Ctors    []ClassCtor
	Fields   []ClassField
	Methods  []ClassMethod
}
