// Package sema resolves names and expression types for a parsed file. The
// resulting Checker answers the type queries the lint rules need: the
// static type of any expression, call and construct signature sets, and
// the overload chosen for each call site.
package sema

import (
	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/symbols"
	"typelint/internal/types"
)

// Checker holds the results of analyzing one file.
type Checker struct {
	build    *ast.Builder
	strs     *source.Interner
	interner *types.Interner
	syms     *symbols.Table
	reporter diag.Reporter

	global    *scope
	scope     *scope
	exprTypes map[ast.ExprID]types.TypeID
	chosen    map[ast.ExprID]types.Signature

	// returnSinks collects value-carrying return types per enclosing
	// function while its body is being typed.
	returnSinks []*[]types.TypeID

	containers containerSyms
}

// containerSyms are the nominal identities of the builtin containers.
type containerSyms struct {
	array symbols.SymbolID
	mapc  symbols.SymbolID
	set   symbols.SymbolID
}

// Check runs both analysis passes over the file and returns the Checker.
// Diagnostics go to the reporter; analysis never fails hard, unresolved
// expressions simply stay untyped.
func Check(b *ast.Builder, strs *source.Interner, fileID ast.FileID, reporter diag.Reporter) *Checker {
	c := &Checker{
		build:     b,
		strs:      strs,
		interner:  types.NewInterner(),
		syms:      symbols.NewTable(64),
		reporter:  reporter,
		exprTypes: make(map[ast.ExprID]types.TypeID, 64),
		chosen:    make(map[ast.ExprID]types.Signature, 16),
	}
	c.global = newScope(nil)
	c.scope = c.global
	c.containers = containerSyms{
		array: c.syms.New(symbols.SymBuiltin, strs.Intern("Array"), source.Span{}),
		mapc:  c.syms.New(symbols.SymBuiltin, strs.Intern("Map"), source.Span{}),
		set:   c.syms.New(symbols.SymBuiltin, strs.Intern("Set"), source.Span{}),
	}

	file := b.Files.Get(fileID)
	if file == nil {
		return c
	}
	c.collectDecls(file.Stmts)
	for _, stmt := range file.Stmts {
		c.checkStmt(stmt)
	}
	return c
}

// TypeAt returns the resolved static type of an expression, NoTypeID for
// anything that did not resolve.
func (c *Checker) TypeAt(id ast.ExprID) types.TypeID {
	return c.exprTypes[id]
}

// CallSignatures returns the overload set of a callable type.
func (c *Checker) CallSignatures(id types.TypeID) []types.Signature {
	return c.interner.CallSignatures(id)
}

// ConstructSignatures returns the construct signature set of a class type.
func (c *Checker) ConstructSignatures(id types.TypeID) []types.Signature {
	return c.interner.ConstructSignatures(id)
}

// ChosenSignature returns the overload selected for a call site.
func (c *Checker) ChosenSignature(call ast.ExprID) (types.Signature, bool) {
	sig, ok := c.chosen[call]
	return sig, ok
}

// TypeInterner exposes the interner backing this file's types.
func (c *Checker) TypeInterner() *types.Interner {
	return c.interner
}

// Symbols exposes the symbol table backing nominal identities.
func (c *Checker) Symbols() *symbols.Table {
	return c.syms
}

func (c *Checker) pushScope() {
	c.scope = newScope(c.scope)
}

func (c *Checker) popScope() {
	c.scope = c.scope.parent
}

func (c *Checker) setType(id ast.ExprID, t types.TypeID) types.TypeID {
	if id.IsValid() && t != types.NoTypeID {
		c.exprTypes[id] = t
	}
	return t
}

// checkStmt types every expression reachable from the statement.
func (c *Checker) checkStmt(id ast.StmtID) {
	if !id.IsValid() {
		return
	}
	stmt := c.build.Stmts.Get(id)
	switch stmt.Kind {
	case ast.StmtExpr:
		data, _ := c.build.Stmts.Expr(id)
		c.typeExpr(data.Expr)

	case ast.StmtReturn:
		data, _ := c.build.Stmts.Return(id)
		if !data.Value.IsValid() {
			return
		}
		t := c.typeExpr(data.Value)
		if len(c.returnSinks) > 0 && t != types.NoTypeID {
			sink := c.returnSinks[len(c.returnSinks)-1]
			*sink = append(*sink, t)
		}

	case ast.StmtBlock:
		data, _ := c.build.Stmts.Block(id)
		c.pushScope()
		for _, inner := range data.Stmts {
			c.checkStmt(inner)
		}
		c.popScope()

	case ast.StmtLet:
		c.checkLet(id)

	case ast.StmtFunc:
		c.checkFuncBody(id)

	case ast.StmtClass:
		c.checkClassBodies(id)
	}
}

// checkLet types the initializer and fills in an inferred binding type
// when the declaration carries no annotation.
func (c *Checker) checkLet(id ast.StmtID) {
	data, _ := c.build.Stmts.Let(id)
	var init types.TypeID
	if data.Init.IsValid() {
		init = c.typeExpr(data.Init)
	}
	// The declaration pass already bound this name in the current scope;
	// only an inferred type is left to fill in. An outer binding of the
	// same name does not count, a local let shadows it.
	if b, ok := c.scope.lookupLocal(data.Name); ok {
		if b.typ == types.NoTypeID && init != types.NoTypeID {
			b.typ = init
			c.scope.bind(data.Name, b)
		}
		return
	}
	// Local let inside a function or block body.
	t := c.resolveType(data.Type)
	if t == types.NoTypeID {
		t = init
	}
	sym := c.syms.New(symbols.SymLet, data.Name, data.NameSpan)
	c.scope.bind(data.Name, binding{sym: sym, typ: t})
}

// checkFuncBody types the statements of a declared function body inside a
// scope holding its parameters.
func (c *Checker) checkFuncBody(id ast.StmtID) {
	data, _ := c.build.Stmts.Func(id)
	if !data.HasBody {
		return
	}
	if _, ok := c.scope.lookupLocal(data.Name); !ok {
		// Function declared inside a block: bind it here from its own
		// signature, no overload grouping at local scope. Shadows any
		// outer declaration of the name.
		sig := c.signatureOf(data.Params, data.Result, data.Body, data.HasBody)
		fn := c.interner.RegisterFn([]types.Signature{sig})
		sym := c.syms.New(symbols.SymFunc, data.Name, data.NameSpan)
		c.scope.bind(data.Name, binding{sym: sym, typ: fn})
	}
	c.pushScope()
	c.bindParams(data.Params)
	sink := make([]types.TypeID, 0, 2)
	c.returnSinks = append(c.returnSinks, &sink)
	for _, stmt := range data.Body {
		c.checkStmt(stmt)
	}
	c.returnSinks = c.returnSinks[:len(c.returnSinks)-1]
	c.popScope()
}

// checkClassBodies types method and constructor bodies.
func (c *Checker) checkClassBodies(id ast.StmtID) {
	data, _ := c.build.Stmts.Class(id)
	for _, method := range data.Methods {
		c.pushScope()
		c.bindParams(method.Params)
		sink := make([]types.TypeID, 0, 2)
		c.returnSinks = append(c.returnSinks, &sink)
		for _, stmt := range method.Body {
			c.checkStmt(stmt)
		}
		c.returnSinks = c.returnSinks[:len(c.returnSinks)-1]
		c.popScope()
	}
}

// bindParams declares parameters in the current scope. An unannotated
// parameter gets the any type.
func (c *Checker) bindParams(params []ast.ParamID) {
	for _, pid := range params {
		p := c.build.Exprs.Param(pid)
		t := c.resolveType(p.Type)
		if t == types.NoTypeID {
			t = c.interner.Builtins().Any
		}
		if p.Rest {
			t = c.instantiateArray(t)
		}
		sym := c.syms.New(symbols.SymLet, p.Name, p.Span)
		c.scope.bind(p.Name, binding{sym: sym, typ: t})
	}
}

// instantiateArray returns the Array<T> instance type.
func (c *Checker) instantiateArray(elem types.TypeID) types.TypeID {
	return c.interner.RegisterInstance(
		c.strs.Intern("Array"), c.containers.array, types.NoTypeID, []types.TypeID{elem})
}
