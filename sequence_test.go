package coords

import (
	"errors"
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(t *testing.T, seq iter.Seq2[Coordinate[string], error]) []Coordinate[string] {
	t.Helper()
	var out []Coordinate[string]
	for c, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		out = append(out, c)
	}
	return out
}

func TestFromSequenceMaps(t *testing.T) {
	elems := []Element[string]{
		MapElem(map[string]float64{"a": 1, "b": 2}),
		MapElem(map[string]float64{"a": 4, "b": 5}),
	}
	got := collect(t, FromSequence(elems, nil, map[string]float64{"c": 10}))
	want := []Coordinate[string]{
		NewCoordinate(map[string]float64{"a": 1, "b": 2, "c": 10}),
		NewCoordinate(map[string]float64{"a": 4, "b": 5, "c": 10}),
	}
	if len(got) != len(want) {
		t.Fatalf("produced %d coordinates, want %d", len(got), len(want))
	}
	for i := range want {
		if !got[i].Equal(want[i]) {
			t.Errorf("element %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestFromSequenceValues(t *testing.T) {
	elems := []Element[string]{
		ValuesElem[string](1, 2, 3),
		ValuesElem[string](4, 5, 6),
	}
	order := []string{"a", "b", "c"}
	got := collect(t, FromSequence(elems, order, nil))
	if len(got) != 2 {
		t.Fatalf("produced %d coordinates", len(got))
	}
	if diff := cmp.Diff([]float64{1, 2, 3}, got[0].ToList(nil)); diff != "" {
		t.Errorf("first element (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{4, 5, 6}, got[1].ToList(nil)); diff != "" {
		t.Errorf("second element (-want +got):\n%s", diff)
	}
	for i, c := range got {
		if !cmp.Equal(order, c.Order()) {
			t.Errorf("element %d order = %v", i, c.Order())
		}
	}
}

func TestFromSequenceCommonWinsOnCollision(t *testing.T) {
	elems := []Element[string]{MapElem(map[string]float64{"a": 1, "c": 2})}
	got := collect(t, FromSequence(elems, nil, map[string]float64{"c": 10}))
	if v, _ := got[0].At("c"); v != 10 {
		t.Errorf("common entry did not win, c = %g", v)
	}
}

func TestFromSequenceValuesWithoutOrder(t *testing.T) {
	elems := []Element[string]{ValuesElem[string](1, 2)}
	for _, err := range FromSequence(elems, nil, nil) {
		if !errors.Is(err, ErrNoOrder) {
			t.Fatalf("expected ErrNoOrder, got %v", err)
		}
	}
}

func TestFromSequenceSurfacesElementFailure(t *testing.T) {
	space := NewSpace("AB", []string{"a", "b"}, true)
	elems := []Element[string]{
		MapElem(map[string]float64{"a": 1, "b": 2}),
		MapElem(map[string]float64{"d": 5}),
		MapElem(map[string]float64{"a": 3, "b": 4}),
	}
	var errs []error
	var coords []Coordinate[string]
	for c, err := range space.FromSequence(elems, nil) {
		errs = append(errs, err)
		coords = append(coords, c)
	}
	if len(errs) != 3 {
		t.Fatalf("expected one result per element, got %d", len(errs))
	}
	if errs[0] != nil || errs[2] != nil {
		t.Errorf("valid elements failed: %v, %v", errs[0], errs[2])
	}
	if !errors.Is(errs[1], ErrSpaceMismatch) {
		t.Errorf("invalid element: expected ErrSpaceMismatch, got %v", errs[1])
	}
	if !coords[2].Equal(NewCoordinate(map[string]float64{"a": 3, "b": 4})) {
		t.Errorf("sequence did not continue past the failing element")
	}
}

func TestFromSequenceSinglePassAndRestart(t *testing.T) {
	elems := []Element[string]{
		MapElem(map[string]float64{"a": 1}),
		MapElem(map[string]float64{"a": 2}),
	}
	seq := FromSequence(elems, nil, nil)

	// early break stops the pass
	count := 0
	for _, err := range seq {
		if err != nil {
			t.Fatal(err)
		}
		count++
		break
	}
	if count != 1 {
		t.Fatalf("consumed %d elements after break", count)
	}

	// ranging again restarts from the beginning
	got := collect(t, seq)
	if len(got) != 2 {
		t.Fatalf("restarted pass produced %d elements", len(got))
	}
	if v, _ := got[0].At("a"); v != 1 {
		t.Errorf("restarted pass did not start over, first a = %g", v)
	}
}

func TestSpaceFromSequenceValues(t *testing.T) {
	space := NewSpace("CAB", []string{"c", "a", "b"}, true)
	elems := []Element[string]{ValuesElem[string](3, 1, 2)}
	var got []Coordinate[string]
	for c, err := range space.FromSequence(elems, nil) {
		if err != nil {
			t.Fatal(err)
		}
		got = append(got, c)
	}
	want := NewCoordinate(map[string]float64{"a": 1, "b": 2, "c": 3})
	if len(got) != 1 || !got[0].Equal(want) {
		t.Fatalf("space sequence = %v, want [%s]", got, want)
	}
	if got[0].Space() != space {
		t.Errorf("produced coordinate not bound to the space")
	}
}
