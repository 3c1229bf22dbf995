package lint

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/types"
)

// unnecessaryInstanceof flags instanceof checks the static types already
// decide: a non-union left side needs no narrowing, and a union none of
// whose members can nominally be an instance of the right side makes the
// check dead. Identity is symbol identity, never a name string and never
// structural shape.
type unnecessaryInstanceof struct{}

func (unnecessaryInstanceof) Name() string { return "no-unnecessary-instanceof" }

func (unnecessaryInstanceof) Doc() string {
	return "disallow instanceof checks the static types already decide"
}

func (unnecessaryInstanceof) Check(ctx *Context, id ast.ExprID) (diag.Diagnostic, bool) {
	binary, ok := ctx.AST.Exprs.Binary(id)
	if !ok || binary.Op != ast.BinInstanceof {
		return diag.Diagnostic{}, false
	}
	in := ctx.Oracle.TypeInterner()

	leftType := ctx.Oracle.TypeAt(binary.Left)
	if leftType == types.NoTypeID || hasEscapeKind(in, leftType) {
		return diag.Diagnostic{}, false
	}

	members := in.UnionMembers(leftType)
	if members == nil {
		span := ctx.AST.Exprs.Get(binary.Left).Span
		return diag.NewWarning(diag.LintNotAUnion, span,
			"left side of instanceof must be a union type"), true
	}

	rightType := ctx.Oracle.TypeAt(binary.Right)
	ctors := ctx.Oracle.ConstructSignatures(rightType)
	if len(ctors) == 0 {
		span := ctx.AST.Exprs.Get(binary.Right).Span
		return diag.NewWarning(diag.LintNotAClass, span,
			"right side of instanceof must be a class"), true
	}

	for _, ctor := range ctors {
		ctorSym := in.SymbolOf(ctor.Result)
		if !ctorSym.IsValid() {
			continue
		}
		for _, member := range members {
			if sym := in.SymbolOf(member); sym.IsValid() && sym == ctorSym {
				return diag.Diagnostic{}, false
			}
		}
	}

	span := ctx.AST.Exprs.Get(id).Span
	return diag.NewWarning(diag.LintUnnecessaryCheck, span,
		"unnecessary instanceof: no union member can be an instance of this class"), true
}

// hasEscapeKind reports whether the type is, or contains as a union
// member, the universal any/unknown escape kind.
func hasEscapeKind(in *types.Interner, t types.TypeID) bool {
	switch in.KindOf(t) {
	case types.KindAny, types.KindUnknown:
		return true
	}
	for _, member := range in.UnionMembers(t) {
		switch in.KindOf(member) {
		case types.KindAny, types.KindUnknown:
			return true
		}
	}
	return false
}
