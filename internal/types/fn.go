package types

import (
	"fmt"

	"fortio.org/safecast"
)

// FnInfo stores metadata for callable types: the full overload set.
type FnInfo struct {
	Sigs []Signature
}

// RegisterFn creates or finds a callable type with the given overload set.
func (in *Interner) RegisterFn(sigs []Signature) TypeID {
	if len(sigs) == 0 {
		return NoTypeID
	}
	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindFn {
			continue
		}
		if int(tt.Payload) >= len(in.fns) {
			continue
		}
		if equalSigSets(in.fns[tt.Payload].Sigs, sigs) {
			return id
		}
	}
	slot := in.appendFnInfo(FnInfo{Sigs: cloneSignatures(sigs)})
	return in.internRaw(Type{Kind: KindFn, Payload: slot})
}

// FnInfo retrieves callable metadata by TypeID.
func (in *Interner) FnInfo(id TypeID) (*FnInfo, bool) {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindFn {
		return nil, false
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.fns) {
		return nil, false
	}
	return &in.fns[tt.Payload], true
}

// CallSignatures returns the overload set of a callable type, nil for
// non-callable types.
func (in *Interner) CallSignatures(id TypeID) []Signature {
	info, ok := in.FnInfo(id)
	if !ok {
		return nil
	}
	return info.Sigs
}

func (in *Interner) appendFnInfo(info FnInfo) uint32 {
	in.fns = append(in.fns, info)
	slot, err := safecast.Conv[uint32](len(in.fns) - 1)
	if err != nil {
		panic(fmt.Errorf("fn info overflow: %w", err))
	}
	return slot
}

func equalSigSets(a, b []Signature) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalSignatures(a[i], b[i]) {
			return false
		}
	}
	return true
}

func cloneSignatures(sigs []Signature) []Signature {
	if len(sigs) == 0 {
		return nil
	}
	out := make([]Signature, len(sigs))
	for i, sig := range sigs {
		params := make([]TypeID, len(sig.Params))
		copy(params, sig.Params)
		out[i] = Signature{Params: params, Result: sig.Result, Variadic: sig.Variadic}
	}
	return out
}
