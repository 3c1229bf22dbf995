package sema

import (
	"fmt"

	"typelint/internal/ast"
	"typelint/internal/diag"
	"typelint/internal/source"
	"typelint/internal/symbols"
	"typelint/internal/types"
)

// collectDecls is the declaration pass. Classes are registered first so
// later annotations can reference any class in the file, then functions
// (grouping repeated declarations of one name into one overload set),
// then lets. Class constructor and member types resolve last.
func (c *Checker) collectDecls(stmts []ast.StmtID) {
	classes := make(map[ast.StmtID]types.TypeID)

	for _, id := range stmts {
		if !id.IsValid() {
			continue
		}
		stmt := c.build.Stmts.Get(id)
		if stmt.Kind != ast.StmtClass {
			continue
		}
		data, _ := c.build.Stmts.Class(id)
		sym := c.syms.New(symbols.SymClass, data.Name, data.NameSpan)
		classType := c.interner.RegisterClass(data.Name, sym, data.NameSpan)
		if c.global.bind(data.Name, binding{sym: sym, typ: classType}) {
			c.reportDuplicate(data.Name, data.NameSpan)
		}
		classes[id] = classType
	}

	c.collectFuncs(stmts)

	for _, id := range stmts {
		if !id.IsValid() {
			continue
		}
		stmt := c.build.Stmts.Get(id)
		if stmt.Kind != ast.StmtLet {
			continue
		}
		data, _ := c.build.Stmts.Let(id)
		sym := c.syms.New(symbols.SymLet, data.Name, data.NameSpan)
		t := c.resolveType(data.Type)
		if c.global.bind(data.Name, binding{sym: sym, typ: t}) {
			c.reportDuplicate(data.Name, data.NameSpan)
		}
	}

	for id, classType := range classes {
		c.resolveClassDetails(id, classType)
	}
}

// collectFuncs binds top-level function declarations. Consecutive or
// scattered declarations of the same name form one overload set; each
// bodiless declaration contributes one signature.
func (c *Checker) collectFuncs(stmts []ast.StmtID) {
	type funcGroup struct {
		name     source.StringID
		span     source.Span
		sigs     []types.Signature
		implSigs []types.Signature
	}
	var order []source.StringID
	groups := make(map[source.StringID]*funcGroup)

	for _, id := range stmts {
		if !id.IsValid() {
			continue
		}
		stmt := c.build.Stmts.Get(id)
		if stmt.Kind != ast.StmtFunc {
			continue
		}
		data, _ := c.build.Stmts.Func(id)
		group, ok := groups[data.Name]
		if !ok {
			group = &funcGroup{name: data.Name, span: data.NameSpan}
			groups[data.Name] = group
			order = append(order, data.Name)
		}
		sig := c.signatureOf(data.Params, data.Result, data.Body, data.HasBody)
		if data.HasBody {
			group.implSigs = append(group.implSigs, sig)
		} else {
			group.sigs = append(group.sigs, sig)
		}
	}

	for _, name := range order {
		group := groups[name]
		// Bodiless declarations form the overload set; the implementing
		// declaration's signature only counts when no overloads exist.
		sigs := group.sigs
		if len(sigs) == 0 {
			sigs = group.implSigs
		}
		fn := c.interner.RegisterFn(sigs)
		sym := c.syms.New(symbols.SymFunc, name, group.span)
		if c.global.bind(name, binding{sym: sym, typ: fn}) {
			c.reportDuplicate(name, group.span)
		}
	}
}

// resolveClassDetails attaches construct signatures and member types. A
// class without declared constructors gets an implicit zero-argument one.
func (c *Checker) resolveClassDetails(id ast.StmtID, classType types.TypeID) {
	data, _ := c.build.Stmts.Class(id)
	info, ok := c.interner.ClassInfo(classType)
	if !ok {
		return
	}

	var ctors []types.Signature
	for _, ctor := range data.Ctors {
		params, variadic := c.resolveParams(ctor.Params)
		ctors = append(ctors, types.Signature{
			Params:   params,
			Result:   info.Instance,
			Variadic: variadic,
		})
	}
	if len(ctors) == 0 {
		ctors = []types.Signature{{Result: info.Instance}}
	}
	c.interner.SetClassCtors(classType, ctors)

	var members []types.Member
	for _, field := range data.Fields {
		members = append(members, types.Member{
			Name: field.Name,
			Type: c.resolveType(field.Type),
		})
	}
	for _, method := range data.Methods {
		sig := c.signatureOf(method.Params, method.Result, method.Body, true)
		members = append(members, types.Member{
			Name: method.Name,
			Type: c.interner.RegisterFn([]types.Signature{sig}),
		})
	}
	c.interner.SetClassMembers(classType, members)
}

// signatureOf builds one call signature from declared parameters and an
// optional result annotation. Without an annotation, a body containing no
// value-carrying return is void; anything else stays any.
func (c *Checker) signatureOf(params []ast.ParamID, result ast.TypeExprID, body []ast.StmtID, hasBody bool) types.Signature {
	paramTypes, variadic := c.resolveParams(params)
	res := c.resolveType(result)
	if res == types.NoTypeID {
		if hasBody && !c.hasValueReturn(body) {
			res = c.interner.Builtins().Void
		} else {
			res = c.interner.Builtins().Any
		}
	}
	return types.Signature{Params: paramTypes, Result: res, Variadic: variadic}
}

// resolveParams resolves declared parameter types. For a rest parameter
// the signature stores the element type; the variadic flag marks it.
func (c *Checker) resolveParams(params []ast.ParamID) ([]types.TypeID, bool) {
	if len(params) == 0 {
		return nil, false
	}
	out := make([]types.TypeID, len(params))
	variadic := false
	for i, pid := range params {
		p := c.build.Exprs.Param(pid)
		t := c.resolveType(p.Type)
		if t == types.NoTypeID {
			t = c.interner.Builtins().Any
		}
		out[i] = t
		if p.Rest && i == len(params)-1 {
			variadic = true
		}
	}
	return out, variadic
}

// hasValueReturn reports whether any return statement in the body carries
// a value. Nested inline functions live in expression payloads, so this
// statement walk never sees their returns.
func (c *Checker) hasValueReturn(body []ast.StmtID) bool {
	for _, id := range body {
		if !id.IsValid() {
			continue
		}
		stmt := c.build.Stmts.Get(id)
		switch stmt.Kind {
		case ast.StmtReturn:
			data, _ := c.build.Stmts.Return(id)
			if data.Value.IsValid() {
				return true
			}
		case ast.StmtBlock:
			data, _ := c.build.Stmts.Block(id)
			if c.hasValueReturn(data.Stmts) {
				return true
			}
		}
	}
	return false
}

func (c *Checker) reportDuplicate(name source.StringID, span source.Span) {
	diag.ReportError(c.reporter, diag.SemaDuplicateSymbol, span,
		fmt.Sprintf("duplicate declaration of %q", c.strs.MustLookup(name)))
}
