package lint

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/types"
)

// returnToVoid flags an inline function passed where the chosen overload
// declares a void-returning callback slot while the supplied function
// actually returns a value. An intent mismatch, not a type error: the
// caller has declared it will not observe the result.
type returnToVoid struct{}

func (returnToVoid) Name() string { return "no-return-to-void" }

func (returnToVoid) Doc() string {
	return "disallow value-returning callbacks where a void-returning one is expected"
}

func (returnToVoid) Check(ctx *Context, id ast.ExprID) (diag.Diagnostic, bool) {
	if _, ok := ctx.AST.Exprs.Func(id); !ok {
		return diag.Diagnostic{}, false
	}
	call, argIndex, ok := ctx.AST.Exprs.EnclosingCall(id)
	if !ok {
		return diag.Diagnostic{}, false
	}
	sig, ok := ctx.Oracle.ChosenSignature(call)
	if !ok {
		return diag.Diagnostic{}, false
	}
	// Arguments matching a rest parameter or falling beyond the declared
	// arity have no declaration-backed slot to check against.
	if argIndex >= len(sig.Params) {
		return diag.Diagnostic{}, false
	}
	if sig.Variadic && argIndex >= len(sig.Params)-1 {
		return diag.Diagnostic{}, false
	}
	paramType := sig.Params[argIndex]
	if paramType == types.NoTypeID {
		return diag.Diagnostic{}, false
	}
	if !ReturnTypeEquals(ctx.Oracle, paramType, types.KindVoid) {
		return diag.Diagnostic{}, false
	}
	actual := ctx.Oracle.TypeAt(id)
	if actual == types.NoTypeID {
		return diag.Diagnostic{}, false
	}
	if ReturnTypeEquals(ctx.Oracle, actual, types.KindVoid) {
		return diag.Diagnostic{}, false
	}

	span := ctx.AST.Exprs.Get(id).Span
	return diag.NewWarning(diag.LintReturnToVoid, span,
		"callback returns a value, but a void-returning callback is expected"), true
}
