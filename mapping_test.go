package introspect

import "testing"

func TestMappingOrderAndAccess(t *testing.T) {
	t.Parallel()

	mp := newMapping([]Member{{Name: "b", Value: 2}, {Name: "a", Value: 1}})

	wantStrings(t, mp.Keys(), []string{"b", "a"})

	values := mp.Values()
	if len(values) != 2 || values[0] != 2 || values[1] != 1 {
		t.Errorf("Values = %v", values)
	}

	if v, ok := mp.Get("a"); !ok || v != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if _, ok := mp.Get("z"); ok {
		t.Error("Get(z) reported presence")
	}
	if mp.Len() != 2 {
		t.Errorf("Len = %d", mp.Len())
	}
}

func TestMappingHas(t *testing.T) {
	t.Parallel()

	mp := newMapping([]Member{{Name: "a", Value: 1}, {Name: "b", Value: 2}})

	if !mp.Has() {
		t.Error("empty name set should be vacuously true")
	}
	if !mp.Has("a", "b") {
		t.Error("Has(a, b) = false")
	}
	if mp.Has("a", "z") {
		t.Error("Has(a, z) = true")
	}
}

func TestMappingDuplicateNames(t *testing.T) {
	t.Parallel()

	// A later duplicate wins but keeps the first position.
	mp := newMapping([]Member{{Name: "a", Value: 1}, {Name: "b", Value: 2}, {Name: "a", Value: 3}})
	wantStrings(t, mp.Keys(), []string{"a", "b"})
	if v, _ := mp.Get("a"); v != 3 {
		t.Errorf("Get(a) = %v, want 3", v)
	}
}
