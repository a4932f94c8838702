package coords

import (
	"cmp"
	"fmt"
	"slices"
)

// Space describes a family of coordinates. A space carries a name, an
// optional required key set, and an optional default dimension order.
// Coordinates constructed through a space are validated against the
// required keys at the end of construction — either the whole
// construction succeeds, or it fails and no coordinate exists.
//
// A space with required keys is the fixed-key-set variant: every
// coordinate in it must hold exactly the declared keys, no more, no
// less. Validation also re-runs on coordinates derived by arithmetic,
// so a result that left its space could never be observed.
type Space[K cmp.Ordered] struct {
	name     string
	required []K
	order    []K
}

// NewSpace creates a fixed-key-set space. Coordinates constructed
// through it must hold exactly the given keys (as a set, ignoring
// order). If ordered is true, keys also becomes the space's default
// dimension order.
func NewSpace[K cmp.Ordered](name string, keys []K, ordered bool) *Space[K] {
	s := &Space[K]{name: name, required: slices.Clone(keys)}
	if ordered {
		s.order = slices.Clone(keys)
	}
	return s
}

// OrderedSpace creates a space which only carries a default dimension
// order, without constraining the key set.
func OrderedSpace[K cmp.Ordered](name string, order []K) *Space[K] {
	return &Space[K]{name: name, order: slices.Clone(order)}
}

// Name returns the space's name.
func (s *Space[K]) Name() string {
	return s.name
}

// Required returns the required key set, or nil if the space does not
// constrain keys.
func (s *Space[K]) Required() []K {
	return slices.Clone(s.required)
}

// DefaultOrder returns the space's default dimension order, or nil.
func (s *Space[K]) DefaultOrder() []K {
	return slices.Clone(s.order)
}

// New constructs a coordinate in the space from a Go map. The input map
// is copied. Construction fails with an error wrapping ErrSpaceMismatch
// if the keys differ from the space's required keys.
func (s *Space[K]) New(m map[K]float64) (Coordinate[K], error) {
	return s.bind(NewDict(m), nil)
}

// Of constructs a coordinate in the space from key/value pairs.
func (s *Space[K]) Of(pairs ...Pair[K]) (Coordinate[K], error) {
	return s.bind(DictOf(pairs...), nil)
}

// NewOrdered constructs a coordinate in the space from a Go map, with
// an instance-level order override.
func (s *Space[K]) NewOrdered(m map[K]float64, order []K) (Coordinate[K], error) {
	return s.bind(NewDict(m), order)
}

// FromValues constructs a coordinate positionally: values are zipped
// against the space's default order. A space without a default order
// yields ErrNoOrder.
func (s *Space[K]) FromValues(values ...float64) (Coordinate[K], error) {
	d, err := zipValues(s.order, values)
	if err != nil {
		return Coordinate[K]{}, err
	}
	return s.bind(d, nil)
}

// bind attaches a dict to the space, running the validation hook.
func (s *Space[K]) bind(d Dict[K], order []K) (Coordinate[K], error) {
	if err := s.check(d); err != nil {
		T().Debugf("space %s rejected construction: %v", s.name, err)
		return Coordinate[K]{}, err
	}
	return Coordinate[K]{dict: d, order: slices.Clone(order), space: s}, nil
}

// check is the validation hook: the key set must equal the required
// set, ignoring order. Spaces without required keys accept everything.
func (s *Space[K]) check(d Dict[K]) error {
	if s.required == nil {
		return nil
	}
	want := slices.Clone(s.required)
	slices.Sort(want)
	want = slices.Compact(want)
	got := d.sortedKeys()
	if slices.Equal(want, got) {
		return nil
	}
	return fmt.Errorf("%w: %s needs keys %v and got %v", ErrSpaceMismatch, s.name, s.required, got)
}
