package types

import (
	"fmt"
	"slices"

	"fortio.org/safecast"
)

// UnionInfo stores the ordered member list of a union type. Members are
// flattened and deduplicated; nested unions never survive construction.
type UnionInfo struct {
	Members []TypeID
}

// MakeUnion builds a union from the provided members, flattening nested
// unions and dropping duplicates while preserving first-seen order.
// A single surviving member collapses to itself; an empty set is invalid.
func (in *Interner) MakeUnion(members []TypeID) TypeID {
	flat := make([]TypeID, 0, len(members))
	for _, m := range members {
		if m == NoTypeID {
			continue
		}
		if nested := in.UnionMembers(m); nested != nil {
			for _, nm := range nested {
				if !slices.Contains(flat, nm) {
					flat = append(flat, nm)
				}
			}
			continue
		}
		if !slices.Contains(flat, m) {
			flat = append(flat, m)
		}
	}

	switch len(flat) {
	case 0:
		return NoTypeID
	case 1:
		return flat[0]
	}

	for id := TypeID(1); int(id) < len(in.types); id++ {
		tt := in.types[id]
		if tt.Kind != KindUnion {
			continue
		}
		if int(tt.Payload) >= len(in.unions) {
			continue
		}
		if slices.Equal(in.unions[tt.Payload].Members, flat) {
			return id
		}
	}

	slot := in.appendUnionInfo(UnionInfo{Members: flat})
	return in.internRaw(Type{Kind: KindUnion, Payload: slot})
}

// UnionMembers returns the member list for a union TypeID, nil otherwise.
func (in *Interner) UnionMembers(id TypeID) []TypeID {
	tt, ok := in.Lookup(id)
	if !ok || tt.Kind != KindUnion {
		return nil
	}
	if tt.Payload == 0 || int(tt.Payload) >= len(in.unions) {
		return nil
	}
	return in.unions[tt.Payload].Members
}

// IsUnion reports whether the TypeID denotes a union.
func (in *Interner) IsUnion(id TypeID) bool {
	return in.KindOf(id) == KindUnion
}

func (in *Interner) appendUnionInfo(info UnionInfo) uint32 {
	in.unions = append(in.unions, info)
	slot, err := safecast.Conv[uint32](len(in.unions) - 1)
	if err != nil {
		panic(fmt.Errorf("union info overflow: %w", err))
	}
	return slot
}
