package sema

import (
	"fmt"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/types"
)

// typeExpr resolves and records the static type of an expression.
// Unresolvable expressions stay untyped; the lint layer treats a missing
// type as an abstain condition, never as an error.
func (c *Checker) typeExpr(id ast.ExprID) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	if t, ok := c.exprTypes[id]; ok {
		return t
	}
	expr := c.build.Exprs.Get(id)
	b := c.interner.Builtins()

	switch expr.Kind {
	case ast.ExprIdent:
		data, _ := c.build.Exprs.Ident(id)
		bind, ok := c.scope.lookup(data.Name)
		if !ok {
			diag.ReportError(c.reporter, diag.SemaUnknownName, expr.Span,
				fmt.Sprintf("unknown name %q", c.strs.MustLookup(data.Name)))
			return types.NoTypeID
		}
		return c.setType(id, bind.typ)

	case ast.ExprLit:
		data, _ := c.build.Exprs.Literal(id)
		switch data.Kind {
		case ast.LitNumber:
			return c.setType(id, b.Number)
		case ast.LitString:
			return c.setType(id, b.String)
		case ast.LitBool:
			return c.setType(id, b.Boolean)
		case ast.LitNull:
			return c.setType(id, b.Null)
		case ast.LitUndefined:
			return c.setType(id, b.Undefined)
		}
		return types.NoTypeID

	case ast.ExprGroup:
		data, _ := c.build.Exprs.Group(id)
		return c.setType(id, c.typeExpr(data.Inner))

	case ast.ExprBinary:
		return c.typeBinary(id)

	case ast.ExprMember:
		return c.typeMember(id)

	case ast.ExprCall:
		return c.typeCall(id)

	case ast.ExprFunc:
		return c.typeFunc(id)
	}
	return types.NoTypeID
}

func (c *Checker) typeBinary(id ast.ExprID) types.TypeID {
	data, _ := c.build.Exprs.Binary(id)
	left := c.typeExpr(data.Left)
	right := c.typeExpr(data.Right)
	b := c.interner.Builtins()

	switch data.Op {
	case ast.BinAnd, ast.BinOr:
		// The value of a logical expression is one of its operands.
		if left == types.NoTypeID || right == types.NoTypeID {
			return types.NoTypeID
		}
		return c.setType(id, c.interner.MakeUnion([]types.TypeID{left, right}))

	case ast.BinEq, ast.BinNeq, ast.BinLt, ast.BinLtEq, ast.BinGt, ast.BinGtEq,
		ast.BinInstanceof:
		return c.setType(id, b.Boolean)

	case ast.BinAdd:
		if c.interner.KindOf(left) == types.KindString || c.interner.KindOf(right) == types.KindString {
			return c.setType(id, b.String)
		}
		return c.setType(id, b.Number)

	default:
		return c.setType(id, b.Number)
	}
}

func (c *Checker) typeMember(id ast.ExprID) types.TypeID {
	data, _ := c.build.Exprs.Member(id)
	objType := c.typeExpr(data.Object)
	if objType == types.NoTypeID {
		return types.NoTypeID
	}
	b := c.interner.Builtins()

	switch c.interner.KindOf(objType) {
	case types.KindAny:
		return c.setType(id, b.Any)

	case types.KindInstance:
		info, _ := c.interner.InstanceInfo(objType)
		if t, ok := c.containerMember(info, objType, data.Name); ok {
			return c.setType(id, t)
		}
		if classInfo, ok := c.interner.ClassInfo(info.Class); ok {
			for _, member := range classInfo.Members {
				if member.Name == data.Name {
					return c.setType(id, member.Type)
				}
			}
		}
		diag.ReportError(c.reporter, diag.SemaUnknownMember, data.NameSpan,
			fmt.Sprintf("type %q has no member %q",
				c.strs.MustLookup(info.Name), c.strs.MustLookup(data.Name)))
		return types.NoTypeID

	case types.KindFn:
		// call and apply forward to the function itself. The signature is
		// loose on purpose; the unused-return rule re-anchors the
		// classification at the receiver.
		name := c.strs.MustLookup(data.Name)
		if name == "call" || name == "apply" {
			sigs := c.interner.CallSignatures(objType)
			results := make([]types.TypeID, 0, len(sigs))
			for _, sig := range sigs {
				results = append(results, sig.Result)
			}
			result := c.interner.MakeUnion(results)
			if result == types.NoTypeID {
				result = b.Any
			}
			return c.setType(id, c.interner.RegisterFn([]types.Signature{{
				Params:   []types.TypeID{b.Any},
				Result:   result,
				Variadic: true,
			}}))
		}
		diag.ReportError(c.reporter, diag.SemaUnknownMember, data.NameSpan,
			fmt.Sprintf("function type has no member %q", name))
		return types.NoTypeID
	}

	diag.ReportError(c.reporter, diag.SemaUnknownMember, data.NameSpan,
		fmt.Sprintf("type %q has no member %q",
			c.interner.KindOf(objType).String(), c.strs.MustLookup(data.Name)))
	return types.NoTypeID
}

func (c *Checker) typeCall(id ast.ExprID) types.TypeID {
	data, _ := c.build.Exprs.Call(id)
	calleeType := c.typeExpr(data.Callee)
	for _, arg := range data.Args {
		c.typeExpr(arg)
	}
	if calleeType == types.NoTypeID {
		return types.NoTypeID
	}
	expr := c.build.Exprs.Get(id)
	b := c.interner.Builtins()

	switch c.interner.KindOf(calleeType) {
	case types.KindAny:
		return c.setType(id, b.Any)

	case types.KindFn:
		sig, ok := c.pickOverload(c.interner.CallSignatures(calleeType), len(data.Args))
		if !ok {
			diag.ReportError(c.reporter, diag.SemaNoOverload, expr.Span,
				fmt.Sprintf("no overload takes %d argument(s)", len(data.Args)))
			return types.NoTypeID
		}
		c.chosen[id] = sig
		return c.setType(id, sig.Result)

	case types.KindClass:
		// Calling a class value constructs an instance.
		sig, ok := c.pickOverload(c.interner.ConstructSignatures(calleeType), len(data.Args))
		if !ok {
			diag.ReportError(c.reporter, diag.SemaNoOverload, expr.Span,
				fmt.Sprintf("no constructor takes %d argument(s)", len(data.Args)))
			return types.NoTypeID
		}
		c.chosen[id] = sig
		return c.setType(id, sig.Result)
	}

	diag.ReportError(c.reporter, diag.SemaNotCallable, expr.Span,
		fmt.Sprintf("type %q is not callable", c.interner.KindOf(calleeType).String()))
	return types.NoTypeID
}

// pickOverload selects the signature for a call by arity. The first
// declaration-order match wins; a lone signature matches any arity so a
// loosely annotated callee never blocks analysis downstream.
func (c *Checker) pickOverload(sigs []types.Signature, argc int) (types.Signature, bool) {
	if len(sigs) == 0 {
		return types.Signature{}, false
	}
	for _, sig := range sigs {
		if sig.Variadic {
			if argc >= len(sig.Params)-1 {
				return sig, true
			}
			continue
		}
		if argc == len(sig.Params) {
			return sig, true
		}
	}
	if len(sigs) == 1 {
		return sigs[0], true
	}
	return types.Signature{}, false
}

// typeFunc types an inline function expression. The return type comes
// from the annotation when present, otherwise from the body: expression
// bodies return their value, block bodies union their value-carrying
// returns and are void without any.
func (c *Checker) typeFunc(id ast.ExprID) types.TypeID {
	data, _ := c.build.Exprs.Func(id)
	b := c.interner.Builtins()

	c.pushScope()
	c.bindParams(data.Params)

	var result types.TypeID
	if data.HasBlock {
		sink := make([]types.TypeID, 0, 2)
		c.returnSinks = append(c.returnSinks, &sink)
		for _, stmt := range data.Body {
			c.checkStmt(stmt)
		}
		c.returnSinks = c.returnSinks[:len(c.returnSinks)-1]
		if len(sink) == 0 {
			result = b.Void
		} else {
			result = c.interner.MakeUnion(sink)
		}
	} else {
		result = c.typeExpr(data.ExprBody)
		if result == types.NoTypeID {
			result = b.Any
		}
	}
	c.popScope()

	if annotated := c.resolveType(data.Result); annotated != types.NoTypeID {
		result = annotated
	}

	params, variadic := c.resolveParams(data.Params)
	return c.setType(id, c.interner.RegisterFn([]types.Signature{{
		Params:   params,
		Result:   result,
		Variadic: variadic,
	}}))
}
