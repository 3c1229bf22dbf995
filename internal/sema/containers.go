package sema

import (
	"typelint/internal/source"
	"typelint/internal/types"
)

// containerMember resolves members of the builtin Array, Map and Set
// instance types. The method surface is the familiar one, trimmed to what
// analyzed programs actually touch.
func (c *Checker) containerMember(info *types.InstanceInfo, objType types.TypeID, name source.StringID) (types.TypeID, bool) {
	switch info.Sym {
	case c.containers.array:
		return c.arrayMember(info, objType, name)
	case c.containers.mapc:
		return c.mapMember(info, objType, name)
	case c.containers.set:
		return c.setMember(info, objType, name)
	}
	return types.NoTypeID, false
}

func (c *Checker) arrayMember(info *types.InstanceInfo, objType types.TypeID, name source.StringID) (types.TypeID, bool) {
	b := c.interner.Builtins()
	elem := b.Any
	if len(info.Args) > 0 {
		elem = info.Args[0]
	}
	elemOrUndef := c.interner.MakeUnion([]types.TypeID{elem, b.Undefined})
	voidCb := c.fn([]types.TypeID{elem}, b.Void, false)

	switch c.strs.MustLookup(name) {
	case "length":
		return b.Number, true
	case "push", "unshift":
		return c.fn([]types.TypeID{elem}, b.Number, true), true
	case "pop", "shift":
		return c.fn(nil, elemOrUndef, false), true
	case "splice":
		return c.fn([]types.TypeID{b.Number, b.Number}, objType, true), true
	case "sort":
		return c.fn([]types.TypeID{b.Any}, objType, true), true
	case "reverse":
		return c.fn(nil, objType, false), true
	case "forEach":
		return c.fn([]types.TypeID{voidCb}, b.Void, false), true
	case "map":
		anyCb := c.fn([]types.TypeID{elem}, b.Any, false)
		anyArr := c.instantiateArray(b.Any)
		return c.fn([]types.TypeID{anyCb}, anyArr, false), true
	case "indexOf":
		return c.fn([]types.TypeID{elem}, b.Number, false), true
	case "includes":
		return c.fn([]types.TypeID{elem}, b.Boolean, false), true
	case "join":
		return c.fn([]types.TypeID{b.String}, b.String, true), true
	}
	return types.NoTypeID, false
}

func (c *Checker) mapMember(info *types.InstanceInfo, objType types.TypeID, name source.StringID) (types.TypeID, bool) {
	b := c.interner.Builtins()
	key, val := b.Any, b.Any
	if len(info.Args) > 0 {
		key = info.Args[0]
	}
	if len(info.Args) > 1 {
		val = info.Args[1]
	}

	switch c.strs.MustLookup(name) {
	case "size":
		return b.Number, true
	case "get":
		return c.fn([]types.TypeID{key}, c.interner.MakeUnion([]types.TypeID{val, b.Undefined}), false), true
	case "set":
		return c.fn([]types.TypeID{key, val}, objType, false), true
	case "delete", "has":
		return c.fn([]types.TypeID{key}, b.Boolean, false), true
	case "clear":
		return c.fn(nil, b.Void, false), true
	case "forEach":
		voidCb := c.fn([]types.TypeID{val, key}, b.Void, false)
		return c.fn([]types.TypeID{voidCb}, b.Void, false), true
	}
	return types.NoTypeID, false
}

func (c *Checker) setMember(info *types.InstanceInfo, objType types.TypeID, name source.StringID) (types.TypeID, bool) {
	b := c.interner.Builtins()
	elem := b.Any
	if len(info.Args) > 0 {
		elem = info.Args[0]
	}

	switch c.strs.MustLookup(name) {
	case "size":
		return b.Number, true
	case "add":
		return c.fn([]types.TypeID{elem}, objType, false), true
	case "delete", "has":
		return c.fn([]types.TypeID{elem}, b.Boolean, false), true
	case "clear":
		return c.fn(nil, b.Void, false), true
	case "forEach":
		voidCb := c.fn([]types.TypeID{elem}, b.Void, false)
		return c.fn([]types.TypeID{voidCb}, b.Void, false), true
	}
	return types.NoTypeID, false
}

// fn interns a single-signature callable type.
func (c *Checker) fn(params []types.TypeID, result types.TypeID, variadic bool) types.TypeID {
	return c.interner.RegisterFn([]types.Signature{{
		Params:   params,
		Result:   result,
		Variadic: variadic,
	}})
}
