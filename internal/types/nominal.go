package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"

	"typelint/internal/source"
	"typelint/internal/symbols"
)

// Member describes a named field or method on a class instance.
type Member struct {
	Name source.StringID
	Type TypeID
}

// ClassInfo stores metadata for a class (constructor) type. Construct
// signatures live here; the class value itself is not callable.
type ClassInfo struct {
	Name     source.StringID
	Sym      symbols.SymbolID
	Decl     source.Span
	Ctors    []Signature
	Instance TypeID
	Members  []Member
}

// InstanceInfo stores metadata for a nominal instance type. Identity is
// the SymbolID; Args carry container type arguments (Array<T>, Map<K, V>).
type InstanceInfo struct {
	Name  source.StringID
	Sym   symbols.SymbolID
	Class TypeID
	Args  []TypeID
}

// RegisterClass allocates a class type together with its instance type.
// Construct signatures and members are attached afterwards.
func (in *Interner) RegisterClass(name source.StringID, sym symbols.SymbolID, decl source.Span) TypeID {
	slot := in.appendClassInfo(ClassInfo{Name: name, Sym: sym, Decl: decl})
	id := in.internRaw(Type{Kind: KindClass, Payload: slot})
	inst := in.RegisterInstance(name, sym, id, nil)
	in.classes[slot].Instance = inst
	return id
}

// SetClassCtors stores the construct signature overload set.
func (in *Interner) SetClassCtors(id TypeID, ctors []Signature) {
	info := in.classInfo(id)
	if info == nil {
		return
	}
	info.Ctors = cloneSignatures(ctors)
}

// SetClassMembers stores the declared fields and methods.
func (in *Interner) SetClassMembers(id TypeID, members []Member) {
	info := in.classInfo(id)
	if info == nil {
		return
	}
	info.Members = slices.Clone(members)
}

// ClassInfo returns metadata for the provided class TypeID.
func (in *Interner) ClassInfo(id TypeID) (*ClassInfo, bool) {
	info := in.classInfo(id)
	if info == nil {
		return nil, false
	}
	return info, true
}

// ConstructSignatures returns the construct signature set of a class
// type, nil for anything that is not constructible.
func (in *Interner) ConstructSignatures(id TypeID) []Signature {
	info := in.classInfo(id)
	if info == nil {
		return nil
	}
	return info.Ctors
}

// RegisterInstance creates or finds the nominal instance type for the
// given symbol and type arguments.
func (in *Interner) RegisterInstance(name source.StringID, sym symbols.SymbolID, class TypeID, args []TypeID) TypeID {
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindInstance {
			continue
		}
		if int(tt.Payload) >= len(in.instances) {
			continue
		}
		info := in.instances[tt.Payload]
		if info.Sym == sym && slices.Equal(info.Args, args) {
			return id
		}
	}
	slot := in.appendInstanceInfo(InstanceInfo{
		Name:  name,
		Sym:   sym,
		Class: class,
		Args:  slices.Clone(args),
	})
	return in.internRaw(Type{Kind: KindInstance, Payload: slot})
}

// InstanceInfo returns metadata for the provided instance TypeID.
func (in *Interner) InstanceInfo(id TypeID) (*InstanceInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindInstance {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.instances) {
		return nil, false
	}
	return &in.instances[tt.Payload], true
}

// SymbolOf returns the nominal identity of a class or instance type,
// NoSymbolID for everything else.
func (in *Interner) SymbolOf(id TypeID) symbols.SymbolID {
	if info, ok := in.InstanceInfo(id); ok {
		return info.Sym
	}
	if info := in.classInfo(id); info != nil {
		return info.Sym
	}
	return symbols.NoSymbolID
}

func (in *Interner) classInfo(id TypeID) *ClassInfo {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindClass {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.classes) {
		return nil
	}
	return &in.classes[tt.Payload]
}

func (in *Interner) appendClassInfo(info ClassInfo) uint32 {
	in.classes = append(in.classes, info)
	slot, err := safecast.Conv[uint32](len(in.classes) - 1)
	if err != nil {
		panic(fmt.Errorf("class info overflow: %w", err))
	}
	return slot
}

func (in *Interner) appendInstanceInfo(info InstanceInfo) uint32 {
	in.instances = append(in.instances, info)
	slot, err := safecast.Conv[uint32](len(in.instances) - 1)
	if err != nil {
		panic(fmt.Errorf("instance info overflow: %w", err))
	}
	return slot
}
