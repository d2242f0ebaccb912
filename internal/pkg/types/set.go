package types

import (
	"iter"
	"maps"
	"slices"
)

// Set is a generic hash set for comparable types backed by map[T]struct{}.
//
// Methods like Add modify the set in place; Difference and Intersection
// return new sets and leave their operands untouched.
type Set[T comparable] map[T]struct{}

// NewSet creates a Set holding the provided elements. Duplicates collapse.
func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	for _, d := range data {
		set[d] = struct{}{}
	}
	return set
}

// Add inserts one or more elements into the set.
func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether value is a member of the set.
func (s Set[T]) Has(value T) bool {
	_, ok := s[value]
	return ok
}

// Len returns the number of elements in the set.
func (s Set[T]) Len() int {
	return len(s)
}

// Difference returns the elements of s that are not in other.
func (s Set[T]) Difference(other Set[T]) Set[T] {
	diff := make(Set[T])
	for val := range s {
		if !other.Has(val) {
			diff[val] = struct{}{}
		}
	}
	return diff
}

// Intersection returns the elements present in both s and other.
func (s Set[T]) Intersection(other Set[T]) Set[T] {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	shared := make(Set[T])
	for val := range small {
		if large.Has(val) {
			shared[val] = struct{}{}
		}
	}
	return shared
}

// ToIter returns an iterator over all elements in the set.
func (s Set[T]) ToIter() iter.Seq[T] {
	return maps.Keys(s)
}

// ToSlice returns the elements of the set in no particular order.
func (s Set[T]) ToSlice() []T {
	return slices.Collect(s.ToIter())
}
