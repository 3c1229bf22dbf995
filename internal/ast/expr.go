package ast

import (
	"typelint/internal/source"
)

// ExprKind enumerates the different kinds of expressions.
type ExprKind uint8

const (
	// ExprIdent represents an identifier expression.
	ExprIdent ExprKind = iota
	// ExprLit represents a literal expression.
	ExprLit
	// ExprCall represents a call expression.
	ExprCall
	// ExprMember represents a property access expression.
	ExprMember
	// ExprBinary represents a binary expression.
	ExprBinary
	// ExprGroup represents a parenthesized expression.
	ExprGroup
	// ExprFunc represents an inline function expression (arrow or
	// traditional form).
	ExprFunc
)

// Expr represents an expression node in the AST.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitKind enumerates literal kinds.
type ExprLitKind uint8

const (
	LitNumber ExprLitKind = iota
	LitString
	LitBool
	LitNull
	LitUndefined
)

// ExprBinaryOp enumerates binary operator kinds.
type ExprBinaryOp uint8

const (
	// BinAdd represents '+'.
	BinAdd ExprBinaryOp = iota
	// BinSub represents '-'.
	BinSub
	// BinMul represents '*'.
	BinMul
	// BinDiv represents '/'.
	BinDiv
	// BinMod represents '%'.
	BinMod
	// BinEq represents '=='.
	BinEq
	// BinNeq represents '!='.
	BinNeq
	// BinLt represents '<'.
	BinLt
	// BinLtEq represents '<='.
	BinLtEq
	// BinGt represents '>'.
	BinGt
	// BinGtEq represents '>='.
	BinGtEq
	// BinAnd represents '&&'.
	BinAnd
	// BinOr represents '||'.
	BinOr
	// BinInstanceof represents the 'instanceof' operator.
	BinInstanceof
)

// IsLogical reports whether the operator is '&&' or '||'.
func (op ExprBinaryOp) IsLogical() bool {
	return op == BinAnd || op == BinOr
}

type ExprIdentData struct {
	Name source.StringID
}

type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

type ExprMemberData struct {
	Object   ExprID
	Name     source.StringID
	NameSpan source.Span
}

type ExprBinaryData struct {
	Op    ExprBinaryOp
	Left  ExprID
	Right ExprID
}

type ExprGroupData struct {
	Inner ExprID
}

// ExprFuncData carries an inline function expression. Exactly one of Body
// (block form) and ExprBody (arrow with expression body) is set.
type ExprFuncData struct {
	Arrow    bool
	Params   []ParamID
	Result   TypeExprID // NoTypeExprID when unannotated
	Body     []StmtID
	ExprBody ExprID
	HasBlock bool
}

// Param describes one declared parameter of a function.
type Param struct {
	Name source.StringID
	Span source.Span
	Type TypeExprID // NoTypeExprID when unannotated
	Rest bool
}
