package sema

import (
	"typelint/internal/source"
	"typelint/internal/symbols"
	"typelint/internal/types"
)

// binding associates a name with its declaration symbol and static type.
type binding struct {
	sym symbols.SymbolID
	typ types.TypeID
}

type scope struct {
	parent *scope
	names  map[source.StringID]binding
}

func newScope(parent *scope) *scope {
	return &scope{
		parent: parent,
		names:  make(map[source.StringID]binding, 8),
	}
}

// bind declares a name in this scope, overwriting any shadowed outer
// binding. Reports whether the name was already declared here.
func (s *scope) bind(name source.StringID, b binding) bool {
	_, dup := s.names[name]
	s.names[name] = b
	return dup
}

// lookupLocal resolves the name in this scope only, ignoring outer
// scopes. Declaration handling uses it so a local name that shadows an
// outer one still gets its own binding.
func (s *scope) lookupLocal(name source.StringID) (binding, bool) {
	b, ok := s.names[name]
	return b, ok
}

// lookup walks outward until the name resolves.
func (s *scope) lookup(name source.StringID) (binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.names[name]; ok {
			return b, true
		}
	}
	return binding{}, false
}
