package lint

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/types"
)

// mutators allow-lists in-place mutating methods on the well-known
// containers, matched purely by the declared type's nominal name plus the
// method name. Calls to these drop their return value idiomatically.
var mutators = map[string]map[string]struct{}{
	"Array": nameSet("push", "pop", "shift", "unshift", "splice", "sort", "reverse"),
	"Map":   nameSet("set", "delete"),
	"Set":   nameSet("add", "delete"),
}

func nameSet(names ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(names))
	for _, name := range names {
		out[name] = struct{}{}
	}
	return out
}

// unusedReturn flags calls whose non-void result is discarded: calls in
// statement position, including the operands of a logical expression that
// itself is a full statement (the 'a() && b()' idiom).
type unusedReturn struct{}

func (unusedReturn) Name() string { return "no-ignored-return" }

func (unusedReturn) Doc() string {
	return "disallow discarding a call's non-void return value"
}

func (r unusedReturn) Check(ctx *Context, id ast.ExprID) (diag.Diagnostic, bool) {
	call, ok := ctx.AST.Exprs.Call(id)
	if !ok {
		return diag.Diagnostic{}, false
	}
	if !inStatementPosition(ctx, id) {
		return diag.Diagnostic{}, false
	}

	calleeType := r.calleeType(ctx, call)
	if calleeType == types.NoTypeID {
		return diag.Diagnostic{}, false
	}
	if ReturnTypeEquals(ctx.Oracle, calleeType, types.KindVoid) ||
		ReturnTypeEquals(ctx.Oracle, calleeType, types.KindNever) {
		return diag.Diagnostic{}, false
	}
	if r.isMutatorCall(ctx, call) {
		return diag.Diagnostic{}, false
	}

	span := ctx.AST.Exprs.Get(id).Span
	return diag.NewWarning(diag.LintUnusedReturn, span,
		"return value is unused"), true
}

// calleeType resolves the type whose return kind decides the rule. A
// '.call' or '.apply' invocation classifies the receiver function itself,
// not the generic call/apply member signature.
func (unusedReturn) calleeType(ctx *Context, call *ast.ExprCallData) types.TypeID {
	if member, ok := ctx.AST.Exprs.Member(call.Callee); ok {
		name := ctx.Strings.MustLookup(member.Name)
		if name == "call" || name == "apply" {
			return ctx.Oracle.TypeAt(member.Object)
		}
	}
	return ctx.Oracle.TypeAt(call.Callee)
}

// isMutatorCall reports whether the call is a member call of an allowed
// in-place mutator on a nominally named container.
func (unusedReturn) isMutatorCall(ctx *Context, call *ast.ExprCallData) bool {
	member, ok := ctx.AST.Exprs.Member(call.Callee)
	if !ok {
		return false
	}
	objType := ctx.Oracle.TypeAt(member.Object)
	info, ok := ctx.Oracle.TypeInterner().InstanceInfo(objType)
	if !ok {
		return false
	}
	methods, ok := mutators[ctx.Strings.MustLookup(info.Name)]
	if !ok {
		return false
	}
	_, ok = methods[ctx.Strings.MustLookup(member.Name)]
	return ok
}

// inStatementPosition reports whether the expression is a full statement
// or sits under a chain of logical operators that is.
func inStatementPosition(ctx *Context, id ast.ExprID) bool {
	cur := id
	for {
		parent := ctx.AST.Exprs.Parent(cur)
		if !parent.IsValid() {
			return ctx.IsStmtRoot(cur)
		}
		binary, ok := ctx.AST.Exprs.Binary(parent)
		if !ok || !binary.Op.IsLogical() {
			return false
		}
		cur = parent
	}
}
