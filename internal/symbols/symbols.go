// Package symbols allocates stable identities for declarations. Nominal
// comparisons elsewhere (instanceof matching in particular) go through
// SymbolID, never through name strings or structure.
package symbols

import (
	"fmt"

	"fortio.org/safecast"

	"typelint/internal/source"
)

// SymbolID uniquely identifies a declaration within a Table.
type SymbolID uint32

// NoSymbolID is the anonymous/undefined placeholder identity. Two
// placeholders never match each other.
const NoSymbolID SymbolID = 0

func (id SymbolID) IsValid() bool { return id != NoSymbolID }

// SymbolKind enumerates declaration kinds.
type SymbolKind uint8

const (
	SymLet SymbolKind = iota
	SymFunc
	SymClass
	SymBuiltin
)

func (k SymbolKind) String() string {
	switch k {
	case SymLet:
		return "let"
	case SymFunc:
		return "function"
	case SymClass:
		return "class"
	case SymBuiltin:
		return "builtin"
	}
	return "unknown"
}

// Symbol describes a single declaration.
type Symbol struct {
	Kind SymbolKind
	Name source.StringID
	Decl source.Span
}

// Table stores declared symbols in a compact arena; index 0 is reserved
// for NoSymbolID.
type Table struct {
	data []Symbol
}

func NewTable(capacity uint32) *Table {
	if capacity == 0 {
		capacity = 64
	}
	return &Table{
		data: make([]Symbol, 1, capacity+1),
	}
}

// New allocates a symbol and returns its ID.
func (t *Table) New(kind SymbolKind, name source.StringID, decl source.Span) SymbolID {
	value, err := safecast.Conv[uint32](len(t.data))
	if err != nil {
		panic(fmt.Errorf("symbol arena overflow: %w", err))
	}
	id := SymbolID(value)
	t.data = append(t.data, Symbol{Kind: kind, Name: name, Decl: decl})
	return id
}

// Get returns the symbol pointer or nil if ID is invalid.
func (t *Table) Get(id SymbolID) *Symbol {
	if !id.IsValid() || int(id) >= len(t.data) {
		return nil
	}
	return &t.data[id]
}

// Len reports the number of symbols excluding the sentinel.
func (t *Table) Len() int { return len(t.data) - 1 }
