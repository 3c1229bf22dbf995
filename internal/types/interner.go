package types

import (
	"fmt"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Invalid   TypeID
	Any       TypeID
	Unknown   TypeID
	Void      TypeID
	Never     TypeID
	Undefined TypeID
	Null      TypeID
	Boolean   TypeID
	Number    TypeID
	String    TypeID
}

// Interner provides stable TypeIDs by hashing structural descriptors.
// Payload-carrying kinds (Fn, Union, Class, Instance) live in side tables
// and are registered through their dedicated constructors.
type Interner struct {
	types    []Type
	index    map[typeKey]TypeID
	builtins Builtins

	fns       []FnInfo
	unions    []UnionInfo
	classes   []ClassInfo
	instances []InstanceInfo
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[typeKey]TypeID, 64),
	}
	in.fns = append(in.fns, FnInfo{}) // reserve 0 as invalid sentinel
	in.unions = append(in.unions, UnionInfo{})
	in.classes = append(in.classes, ClassInfo{})
	in.instances = append(in.instances, InstanceInfo{})
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Any = in.Intern(Type{Kind: KindAny})
	in.builtins.Unknown = in.Intern(Type{Kind: KindUnknown})
	in.builtins.Void = in.Intern(Type{Kind: KindVoid})
	in.builtins.Never = in.Intern(Type{Kind: KindNever})
	in.builtins.Undefined = in.Intern(Type{Kind: KindUndefined})
	in.builtins.Null = in.Intern(Type{Kind: KindNull})
	in.builtins.Boolean = in.Intern(Type{Kind: KindBoolean})
	in.builtins.Number = in.Intern(Type{Kind: KindNumber})
	in.builtins.String = in.Intern(Type{Kind: KindString})
	return in
}

// Builtins returns TypeIDs for primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the provided descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	key := typeKey(t)
	if id, ok := in.index[key]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the map.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	key := typeKey(t)
	in.index[key] = id
	return id
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

// KindOf returns the kind of the type, KindInvalid for bad IDs.
func (in *Interner) KindOf(id TypeID) Kind {
	tt, ok := in.Lookup(id)
	if !ok {
		return KindInvalid
	}
	return tt.Kind
}

type typeKey struct {
	Kind    Kind
	Payload uint32
}
