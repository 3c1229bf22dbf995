package sema

import (
	"fmt"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/symbols"
	"typelint/internal/types"
)

// resolveType turns a type annotation into an interned TypeID. NoTypeID
// means the annotation was absent or did not resolve; the caller decides
// whether that falls back to any or stays untyped.
func (c *Checker) resolveType(id ast.TypeExprID) types.TypeID {
	if !id.IsValid() {
		return types.NoTypeID
	}
	te := c.build.Types.Get(id)
	switch te.Kind {
	case ast.TypeName:
		return c.resolveTypeName(id)

	case ast.TypeUnion:
		data, _ := c.build.Types.Union(id)
		members := make([]types.TypeID, 0, len(data.Members))
		for _, m := range data.Members {
			t := c.resolveType(m)
			if t == types.NoTypeID {
				return types.NoTypeID
			}
			members = append(members, t)
		}
		return c.interner.MakeUnion(members)

	case ast.TypeFn:
		data, _ := c.build.Types.Fn(id)
		params, variadic := c.resolveParams(data.Params)
		result := c.resolveType(data.Result)
		if result == types.NoTypeID {
			result = c.interner.Builtins().Any
		}
		return c.interner.RegisterFn([]types.Signature{{
			Params:   params,
			Result:   result,
			Variadic: variadic,
		}})
	}
	return types.NoTypeID
}

func (c *Checker) resolveTypeName(id ast.TypeExprID) types.TypeID {
	data, _ := c.build.Types.Name(id)
	te := c.build.Types.Get(id)
	name := c.strs.MustLookup(data.Name)
	b := c.interner.Builtins()

	switch name {
	case "void":
		return b.Void
	case "never":
		return b.Never
	case "any":
		return b.Any
	case "unknown":
		return b.Unknown
	case "boolean":
		return b.Boolean
	case "number":
		return b.Number
	case "string":
		return b.String
	case "undefined":
		return b.Undefined
	case "null":
		return b.Null
	case "Array", "Set":
		return c.resolveContainer(id, name, 1)
	case "Map":
		return c.resolveContainer(id, name, 2)
	}

	if len(data.Args) > 0 {
		diag.ReportError(c.reporter, diag.SemaBadTypeArgs, te.Span,
			fmt.Sprintf("type %q does not take type arguments", name))
		return types.NoTypeID
	}

	// A class name in type position denotes the instance type.
	if bind, ok := c.global.lookup(data.Name); ok {
		if info, isClass := c.interner.ClassInfo(bind.typ); isClass {
			return info.Instance
		}
	}
	diag.ReportError(c.reporter, diag.SemaUnknownType, te.Span,
		fmt.Sprintf("unknown type %q", name))
	return types.NoTypeID
}

// resolveContainer instantiates Array<T>, Set<T> or Map<K, V>. Missing
// type arguments default to any.
func (c *Checker) resolveContainer(id ast.TypeExprID, name string, arity int) types.TypeID {
	data, _ := c.build.Types.Name(id)
	te := c.build.Types.Get(id)
	if len(data.Args) > arity {
		diag.ReportError(c.reporter, diag.SemaBadTypeArgs, te.Span,
			fmt.Sprintf("%s takes %d type argument(s), got %d", name, arity, len(data.Args)))
		return types.NoTypeID
	}
	args := make([]types.TypeID, arity)
	for i := range args {
		args[i] = c.interner.Builtins().Any
		if i < len(data.Args) {
			if t := c.resolveType(data.Args[i]); t != types.NoTypeID {
				args[i] = t
			}
		}
	}
	var sym symbols.SymbolID
	switch name {
	case "Array":
		sym = c.containers.array
	case "Map":
		sym = c.containers.mapc
	case "Set":
		sym = c.containers.set
	}
	return c.interner.RegisterInstance(data.Name, sym, types.NoTypeID, args)
}
