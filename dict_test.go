package coords

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictConstruction(t *testing.T) {
	d1 := NewDict(map[string]float64{"a": 1, "b": 2, "c": 3})
	d2 := DictOf(P("a", 1), P("b", 2), P("c", 3))
	if !d1.Equal(d2) {
		t.Errorf("map and pair construction differ: %s vs %s", d1, d2)
	}
	if d1.Len() != 3 {
		t.Errorf("expected 3 keys, got %d", d1.Len())
	}
}

func TestDictConstructionCopiesInput(t *testing.T) {
	m := map[string]float64{"a": 1}
	d := NewDict(m)
	m["a"] = 99
	v, err := d.At("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != 1 {
		t.Errorf("dict shares storage with input map, got %g", v)
	}
}

func TestDictDuplicatePairsLastWins(t *testing.T) {
	d := DictOf(P("a", 1), P("a", 5))
	v, err := d.At("a")
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Errorf("expected last duplicate pair to win, got %g", v)
	}
}

func TestDictAt(t *testing.T) {
	d := DictOf(P("a", 1), P("b", 2), P("c", 3))
	for key, want := range map[string]float64{"a": 1, "b": 2, "c": 3} {
		v, err := d.At(key)
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("At(%s) = %g, want %g", key, v, want)
		}
	}
}

func TestDictAtMissingKey(t *testing.T) {
	d := DictOf(P("a", 1))
	_, err := d.At("d")
	if !errors.Is(err, ErrNoSuchKey) {
		t.Fatalf("expected ErrNoSuchKey, got %v", err)
	}
	if !strings.Contains(err.Error(), "no key d") {
		t.Errorf("error does not name the missing key: %v", err)
	}
}

func TestDictSetRejected(t *testing.T) {
	d := DictOf(P("a", 1))
	if err := d.Set("a", 2); !errors.Is(err, ErrImmutable) {
		t.Fatalf("expected ErrImmutable, got %v", err)
	}
	if err := d.Set("z", 2); !errors.Is(err, ErrImmutable) {
		t.Fatalf("expected ErrImmutable for new key too, got %v", err)
	}
	if v, _ := d.At("a"); v != 1 {
		t.Errorf("Set changed the dict")
	}
}

func TestDictIterationOrder(t *testing.T) {
	d := DictOf(P("c", 3), P("a", 1), P("b", 2))
	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("keys not in ascending order (-want +got):\n%s", diff)
	}
	var vals []float64
	for k, v := range d.All() {
		if !d.Has(k) {
			t.Errorf("All yielded foreign key %s", k)
		}
		vals = append(vals, v)
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, vals); diff != "" {
		t.Errorf("values not in key order (-want +got):\n%s", diff)
	}
}

func TestDictIterationStops(t *testing.T) {
	d := DictOf(P("a", 1), P("b", 2), P("c", 3))
	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k)
		if len(keys) == 2 {
			break
		}
	}
	if !slices.Equal(keys, []string{"a", "b"}) {
		t.Errorf("early break yielded %v", keys)
	}
}

func TestDictString(t *testing.T) {
	d := DictOf(P("b", -20), P("a", 10), P("c", 1.5))
	want := "Dict{a: 10, b: -20, c: 1.5}"
	if d.String() != want {
		t.Errorf("String() = %q, want %q", d.String(), want)
	}
}

func TestDictEqual(t *testing.T) {
	a := DictOf(P("a", 1), P("b", 2))
	b := NewDict(map[string]float64{"b": 2, "a": 1})
	c := DictOf(P("a", 1), P("b", 3))
	d := DictOf(P("a", 1))
	if !a.Equal(b) {
		t.Errorf("equal dicts compare unequal")
	}
	if a.Equal(c) {
		t.Errorf("dicts with different values compare equal")
	}
	if a.Equal(d) {
		t.Errorf("dicts with different key sets compare equal")
	}
}

func TestEmptyDict(t *testing.T) {
	var d Dict[string]
	if d.Len() != 0 {
		t.Errorf("zero dict has %d keys", d.Len())
	}
	if d.Sum() != 0 {
		t.Errorf("empty sum = %g", d.Sum())
	}
	if d.Prod() != 1 {
		t.Errorf("empty prod = %g, want 1", d.Prod())
	}
	if d.String() != "Dict{}" {
		t.Errorf("empty String() = %q", d.String())
	}
	if !d.Equal(NewDict(map[string]float64{})) {
		t.Errorf("zero dict not equal to empty dict")
	}
}

func TestDictIntKeys(t *testing.T) {
	d := DictOf(P(2, 20.0), P(1, 10.0))
	var keys []int
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	if !slices.Equal(keys, []int{1, 2}) {
		t.Errorf("int keys iterate as %v", keys)
	}
}
