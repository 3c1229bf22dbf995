package ast

import (
	"typelint/internal/source"
)

// TypeExprKind enumerates type annotation syntax kinds.
type TypeExprKind uint8

const (
	// TypeName represents a named type reference, possibly with type
	// arguments (Array<T>, Map<K, V>).
	TypeName TypeExprKind = iota
	// TypeUnion represents 'A | B | C'.
	TypeUnion
	// TypeFn represents '(p: T) => R'.
	TypeFn
)

// TypeExpr represents a type annotation node.
type TypeExpr struct {
	Kind    TypeExprKind
	Span    source.Span
	Payload PayloadID
}

type TypeNameData struct {
	Name source.StringID
	Args []TypeExprID
}

type TypeUnionData struct {
	Members []TypeExprID
}

type TypeFnData struct {
	Params []ParamID
	Result TypeExprID
}

// TypeExprs manages allocation of type annotations.
type TypeExprs struct {
	Arena  *Arena[TypeExpr]
	Names  *Arena[TypeNameData]
	Unions *Arena[TypeUnionData]
	Fns    *Arena[TypeFnData]
}

func NewTypeExprs(capHint uint) *TypeExprs {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &TypeExprs{
		Arena:  NewArena[TypeExpr](capHint),
		Names:  NewArena[TypeNameData](capHint),
		Unions: NewArena[TypeUnionData](capHint),
		Fns:    NewArena[TypeFnData](capHint),
	}
}

func (t *TypeExprs) new(kind TypeExprKind, span source.Span, payload PayloadID) TypeExprID {
	return TypeExprID(t.Arena.Allocate(TypeExpr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

// Get returns the type annotation with the given ID.
func (t *TypeExprs) Get(id TypeExprID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

// NewName creates a named type reference.
func (t *TypeExprs) NewName(span source.Span, name source.StringID, args []TypeExprID) TypeExprID {
	payload := t.Names.Allocate(TypeNameData{Name: name, Args: args})
	return t.new(TypeName, span, PayloadID(payload))
}

// Name returns the named type data.
func (t *TypeExprs) Name(id TypeExprID) (*TypeNameData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeName {
		return nil, false
	}
	return t.Names.Get(uint32(te.Payload)), true
}

// NewUnion creates a union type annotation.
func (t *TypeExprs) NewUnion(span source.Span, members []TypeExprID) TypeExprID {
	payload := t.Unions.Allocate(TypeUnionData{Members: members})
	return t.new(TypeUnion, span, PayloadID(payload))
}

// Union returns the union type data.
func (t *TypeExprs) Union(id TypeExprID) (*TypeUnionData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeUnion {
		return nil, false
	}
	return t.Unions.Get(uint32(te.Payload)), true
}

// NewFn creates a function type annotation.
func (t *TypeExprs) NewFn(span source.Span, params []ParamID, result TypeExprID) TypeExprID {
	payload := t.Fns.Allocate(TypeFnData{Params: params, Result: result})
	return t.new(TypeFn, span, PayloadID(payload))
}

// Fn returns the function type data.
func (t *TypeExprs) Fn(id TypeExprID) (*TypeFnData, bool) {
	te := t.Get(id)
	if te == nil || te.Kind != TypeFn {
		return nil, false
	}
	return t.Fns.Get(uint32(te.Payload)), true
}
