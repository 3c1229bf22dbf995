package ast

import (
	"typelint/internal/source"
)

// Exprs manages allocation of expressions. Parent links are recorded at
// construction time so rules can walk from an argument to its enclosing
// call without re-traversing the tree.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Calls    *Arena[ExprCallData]
	Members  *Arena[ExprMemberData]
	Binaries *Arena[ExprBinaryData]
	Groups   *Arena[ExprGroupData]
	Funcs    *Arena[ExprFuncData]
	Params   *Arena[Param]

	parents []ExprID // indexed by ExprID-1
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Calls:    NewArena[ExprCallData](capHint),
		Members:  NewArena[ExprMemberData](capHint),
		Binaries: NewArena[ExprBinaryData](capHint),
		Groups:   NewArena[ExprGroupData](capHint),
		Funcs:    NewArena[ExprFuncData](capHint),
		Params:   NewArena[Param](capHint),
		parents:  make([]ExprID, 0, capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	id := ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
	e.parents = append(e.parents, NoExprID)
	return id
}

func (e *Exprs) setParent(child, parent ExprID) {
	if child == NoExprID {
		return
	}
	e.parents[child-1] = parent
}

// Get returns the expression with the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Parent returns the enclosing expression, or NoExprID for roots.
func (e *Exprs) Parent(id ExprID) ExprID {
	if id == NoExprID || int(id) > len(e.parents) {
		return NoExprID
	}
	return e.parents[id-1]
}

// NewIdent creates a new identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier data for the given expression ID.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a new literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal data for the given expression ID.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewCall creates a new call expression.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: args})
	id := e.new(ExprCall, span, PayloadID(payload))
	e.setParent(callee, id)
	for _, arg := range args {
		e.setParent(arg, id)
	}
	return id
}

// Call returns the call data for the given expression ID.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewMember creates a new property access expression.
func (e *Exprs) NewMember(span source.Span, object ExprID, name source.StringID, nameSpan source.Span) ExprID {
	payload := e.Members.Allocate(ExprMemberData{Object: object, Name: name, NameSpan: nameSpan})
	id := e.new(ExprMember, span, PayloadID(payload))
	e.setParent(object, id)
	return id
}

// Member returns the member data for the given expression ID.
func (e *Exprs) Member(id ExprID) (*ExprMemberData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprMember {
		return nil, false
	}
	return e.Members.Get(uint32(expr.Payload)), true
}

// NewBinary creates a new binary expression.
func (e *Exprs) NewBinary(span source.Span, op ExprBinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	id := e.new(ExprBinary, span, PayloadID(payload))
	e.setParent(left, id)
	e.setParent(right, id)
	return id
}

// Binary returns the binary data for the given expression ID.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewGroup creates a new parenthesized expression.
func (e *Exprs) NewGroup(span source.Span, inner ExprID) ExprID {
	payload := e.Groups.Allocate(ExprGroupData{Inner: inner})
	id := e.new(ExprGroup, span, PayloadID(payload))
	e.setParent(inner, id)
	return id
}

// Group returns the group data for the given expression ID.
func (e *Exprs) Group(id ExprID) (*ExprGroupData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprGroup {
		return nil, false
	}
	return e.Groups.Get(uint32(expr.Payload)), true
}

// NewFunc creates a new inline function expression.
func (e *Exprs) NewFunc(span source.Span, data ExprFuncData) ExprID {
	payload := e.Funcs.Allocate(data)
	id := e.new(ExprFunc, span, PayloadID(payload))
	e.setParent(data.ExprBody, id)
	return id
}

// Func returns the function data for the given expression ID.
func (e *Exprs) Func(id ExprID) (*ExprFuncData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprFunc {
		return nil, false
	}
	return e.Funcs.Get(uint32(expr.Payload)), true
}

// NewParam allocates a parameter descriptor.
func (e *Exprs) NewParam(p Param) ParamID {
	return ParamID(e.Params.Allocate(p))
}

// Param returns the parameter with the given ID.
func (e *Exprs) Param(id ParamID) *Param {
	return e.Params.Get(uint32(id))
}

// EnclosingCall reports the call whose argument list directly contains id,
// together with the zero-based argument position. Grouping parentheses are
// not looked through: only a direct positional argument qualifies.
func (e *Exprs) EnclosingCall(id ExprID) (call ExprID, argIndex int, ok bool) {
	parent := e.Parent(id)
	if parent == NoExprID {
		return NoExprID, 0, false
	}
	data, isCall := e.Call(parent)
	if !isCall {
		return NoExprID, 0, false
	}
	for i, arg := range data.Args {
		if arg == id {
			return parent, i, true
		}
	}
	return NoExprID, 0, false
}
