package ast

import (
	"typelint/internal/source"
)

// Stmts manages allocation of statements.
type Stmts struct {
	Arena   *Arena[Stmt]
	Exprs   *Arena[StmtExprData]
	Returns *Arena[StmtReturnData]
	Blocks  *Arena[StmtBlockData]
	Lets    *Arena[StmtLetData]
	Funcs   *Arena[StmtFuncData]
	Classes *Arena[StmtClassData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:   NewArena[Stmt](capHint),
		Exprs:   NewArena[StmtExprData](capHint),
		Returns: NewArena[StmtReturnData](capHint),
		Blocks:  NewArena[StmtBlockData](capHint),
		Lets:    NewArena[StmtLetData](capHint),
		Funcs:   NewArena[StmtFuncData](capHint),
		Classes: NewArena[StmtClassData](capHint),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the statement with the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewExpr creates an expression statement.
func (s *Stmts) NewExpr(span source.Span, expr ExprID) StmtID {
	payload := s.Exprs.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// Expr returns the expression statement data.
func (s *Stmts) Expr(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.Exprs.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return statement data.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewBlock creates a block statement.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: stmts})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block statement data.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewLet creates a let declaration.
func (s *Stmts) NewLet(span source.Span, data StmtLetData) StmtID {
	payload := s.Lets.Allocate(data)
	return s.new(StmtLet, span, PayloadID(payload))
}

// Let returns the let declaration data.
func (s *Stmts) Let(id StmtID) (*StmtLetData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtLet {
		return nil, false
	}
	return s.Lets.Get(uint32(stmt.Payload)), true
}

// NewFunc creates a function declaration.
func (s *Stmts) NewFunc(span source.Span, data StmtFuncData) StmtID {
	payload := s.Funcs.Allocate(data)
	return s.new(StmtFunc, span, PayloadID(payload))
}

// Func returns the function declaration data.
func (s *Stmts) Func(id StmtID) (*StmtFuncData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtFunc {
		return nil, false
	}
	return s.Funcs.Get(uint32(stmt.Payload)), true
}

// NewClass creates a class declaration.
func (s *Stmts) NewClass(span source.Span, data StmtClassData) StmtID {
	payload := s.Classes.Allocate(data)
	return s.new(StmtClass, span, PayloadID(payload))
}

// Class returns the class declaration data.
func (s *Stmts) Class(id StmtID) (*StmtClassData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtClass {
		return nil, false
	}
	return s.Classes.Get(uint32(stmt.Payload)), true
}
