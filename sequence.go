package coords

import (
	"cmp"
	"iter"
	"maps"
	"slices"
)

// Element is a single input to the bulk factories: either map-shaped or
// value-sequence-shaped. The zero Element behaves like an empty map.
type Element[K cmp.Ordered] struct {
	m      map[K]float64
	values []float64
	seq    bool
}

// MapElem wraps a map-shaped input.
func MapElem[K cmp.Ordered](m map[K]float64) Element[K] {
	return Element[K]{m: m}
}

// ValuesElem wraps a positional, value-sequence-shaped input. Building
// a coordinate from it requires a resolvable order.
func ValuesElem[K cmp.Ordered](values ...float64) Element[K] {
	return Element[K]{values: values, seq: true}
}

// FromSequence lazily constructs one free coordinate per input element.
//
// The returned sequence is single-pass but restartable: every range
// over it walks the elements from the start again. Each element is
// parsed only when it is pulled, and a failing element surfaces its
// construction error at that point — under the same contract as direct
// construction — while leaving the consumer free to continue with the
// next element.
//
// order, if non-empty, is the zip order for value-shaped elements and
// becomes each produced coordinate's order override. common entries are
// merged into every element and win on key collision.
func FromSequence[K cmp.Ordered](elems []Element[K], order []K, common map[K]float64) iter.Seq2[Coordinate[K], error] {
	return produce[K](nil, elems, order, common)
}

// FromSequence lazily constructs one coordinate per input element in
// the space, under the same laziness contract as the package-level
// FromSequence. Value-shaped elements zip against the space's default
// order; every produced coordinate is validated against the space.
func (s *Space[K]) FromSequence(elems []Element[K], common map[K]float64) iter.Seq2[Coordinate[K], error] {
	return produce(s, elems, nil, common)
}

func produce[K cmp.Ordered](s *Space[K], elems []Element[K], order []K, common map[K]float64) iter.Seq2[Coordinate[K], error] {
	return func(yield func(Coordinate[K], error) bool) {
		for i, e := range elems {
			c, err := buildElement(s, e, order, common)
			if err != nil {
				T().Debugf("sequence element %d not constructible: %v", i, err)
			}
			if !yield(c, err) {
				return
			}
		}
	}
}

// buildElement performs one construction attempt.
func buildElement[K cmp.Ordered](s *Space[K], e Element[K], order []K, common map[K]float64) (Coordinate[K], error) {
	var d Dict[K]
	if e.seq {
		zipOrder := order
		if len(zipOrder) == 0 && s != nil {
			zipOrder = s.order
		}
		var err error
		if d, err = zipValues(zipOrder, e.values); err != nil {
			return Coordinate[K]{}, err
		}
	} else {
		d = Dict[K]{m: maps.Clone(e.m)}
		if d.m == nil {
			d.m = map[K]float64{}
		}
	}
	for k, v := range common {
		d.m[k] = v
	}
	if s != nil {
		return s.bind(d, order)
	}
	return Coordinate[K]{dict: d, order: slices.Clone(order)}, nil
}
