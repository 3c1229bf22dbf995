package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindAny
	KindUnknown
	KindVoid
	KindNever
	KindUndefined
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindFn
	KindUnion
	KindClass
	KindInstance
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindAny:
		return "any"
	case KindUnknown:
		return "unknown"
	case KindVoid:
		return "void"
	case KindNever:
		return "never"
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindFn:
		return "function"
	case KindUnion:
		return "union"
	case KindClass:
		return "class"
	case KindInstance:
		return "instance"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor for any supported type. Payload indexes a
// per-kind info table for Fn, Union, Class and Instance kinds.
type Type struct {
	Kind    Kind
	Payload uint32
}

// Signature is a single overload of a callable or constructible type.
type Signature struct {
	Params   []TypeID
	Result   TypeID
	Variadic bool // last parameter is a rest parameter
}

func equalSignatures(a, b Signature) bool {
	if a.Result != b.Result || a.Variadic != b.Variadic || len(a.Params) != len(b.Params) {
		return false
	}
	for i := range a.Params {
		if a.Params[i] != b.Params[i] {
			return false
		}
	}
	return true
}
