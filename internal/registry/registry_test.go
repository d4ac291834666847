package registry

import "testing"

func TestPutGet(t *testing.T) {
	r := New()
	r.Put(TagMember, 7, "uuid-7")

	got, ok := r.Get(TagMember, 7)
	if !ok {
		t.Fatal("expected mapping for (member, 7)")
	}
	if got != "uuid-7" {
		t.Errorf("expected uuid-7, got %s", got)
	}
}

func TestGetAbsent(t *testing.T) {
	r := New()
	r.Put(TagMember, 7, "uuid-7")

	if _, ok := r.Get(TagMember, 8); ok {
		t.Error("expected no mapping for (member, 8)")
	}
	// Same id under a different tag is a different key.
	if _, ok := r.Get(TagProduct, 7); ok {
		t.Error("expected no mapping for (prod, 7)")
	}
}

func TestCountAndLen(t *testing.T) {
	r := New()
	r.Put(TagMember, 1, "a")
	r.Put(TagMember, 2, "b")
	r.Put(TagTransaction, 1, "c")

	if got := r.Count(TagMember); got != 2 {
		t.Errorf("expected 2 member entries, got %d", got)
	}
	if got := r.Count(TagTransaction); got != 1 {
		t.Errorf("expected 1 txn entry, got %d", got)
	}
	if got := r.Count(TagEmployee); got != 0 {
		t.Errorf("expected 0 emp entries, got %d", got)
	}
	if got := r.Len(); got != 3 {
		t.Errorf("expected 3 total entries, got %d", got)
	}
}

// Each (tag, source id) pair maps to exactly one target id, so a reverse
// lookup over all entries recovers the original key uniquely.
func TestInjectivePerTag(t *testing.T) {
	r := New()
	ids := map[int64]string{1: "u1", 2: "u2", 3: "u3"}
	for src, target := range ids {
		r.Put(TagProduct, src, target)
	}

	seen := make(map[string]int64)
	for src := range ids {
		target, ok := r.Get(TagProduct, src)
		if !ok {
			t.Fatalf("missing mapping for %d", src)
		}
		if prev, dup := seen[target]; dup {
			t.Errorf("target id %s maps to both %d and %d", target, prev, src)
		}
		seen[target] = src
	}
}
