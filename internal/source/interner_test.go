package source

import "testing"

func TestInterner_RoundTrip(t *testing.T) {
	in := NewInterner()

	id := in.Intern("push")
	if id == NoStringID {
		t.Fatalf("interned string got the sentinel ID")
	}
	if again := in.Intern("push"); again != id {
		t.Errorf("same string must intern to one ID: %v vs %v", id, again)
	}
	if got := in.MustLookup(id); got != "push" {
		t.Errorf("MustLookup = %q", got)
	}
	if other := in.Intern("pop"); other == id {
		t.Errorf("distinct strings must differ")
	}
}

func TestInterner_EmptyString(t *testing.T) {
	in := NewInterner()
	if got := in.Intern(""); got != NoStringID {
		t.Errorf("the empty string is pre-interned as NoStringID, got %v", got)
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("Lookup(NoStringID) = (%q, %v)", s, ok)
	}
}

func TestInterner_LookupInvalid(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(99)); ok {
		t.Errorf("out-of-range lookup must fail")
	}
	if in.Has(StringID(99)) {
		t.Errorf("Has must be false for unknown IDs")
	}
}

func TestInterner_InternBytes(t *testing.T) {
	in := NewInterner()
	buf := []byte("name")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if got := in.MustLookup(id); got != "name" {
		t.Errorf("interner must not alias the caller's buffer, got %q", got)
	}
}
