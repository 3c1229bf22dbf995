package lint

import (
	"typelint/internal/types"
)

// ReturnTypeEquals reports whether every concrete shape reachable from t
// is a callable all of whose call signatures return exactly kind, never a
// union containing other kinds.
//
// The any type passes unconditionally: any is compatible with everything
// and the rules err toward not flagging. A union passes only when every
// member passes, so a maybe-void, maybe-number callable classifies as
// non-void and downstream consumers still flag it. A type with no call
// signatures never passes.
func ReturnTypeEquals(o Oracle, t types.TypeID, kind types.Kind) bool {
	in := o.TypeInterner()
	if in.KindOf(t) == types.KindAny {
		return true
	}
	if members := in.UnionMembers(t); members != nil {
		for _, member := range members {
			if !ReturnTypeEquals(o, member, kind) {
				return false
			}
		}
		return true
	}
	sigs := o.CallSignatures(t)
	if len(sigs) == 0 {
		return false
	}
	for _, sig := range sigs {
		if in.IsUnion(sig.Result) || in.KindOf(sig.Result) != kind {
			return false
		}
	}
	return true
}
