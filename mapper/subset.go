package mapper

import (
	"fmt"

	"github.com/atomforge/atomtype/typing"
)

// Subset remaps origin category ids onto an explicit destination subset.
// Immutable after construction.
type Subset struct {
	originToDest map[int]int
	numTypes     int
	catchall     bool
}

// NewSubset builds a direct (injective) subset mapping: position in
// origins is the destination id, the value is the origin id. Each origin
// id may appear once.
//
// With includeCatchall, one extra destination is appended after the
// explicit ones and absorbs every origin id not present in origins;
// otherwise those resolve to typing.Unmapped. Complexity: O(len(origins)).
func NewSubset(origins []int, includeCatchall bool) (*Subset, error) {
	groups := make([][]int, len(origins))
	for dest, origin := range origins {
		groups[dest] = []int{origin}
	}

	return NewGroupedSubset(groups, includeCatchall)
}

// NewGroupedSubset builds a surjective subset mapping: one origin-id
// group per destination id, letting many origin categories fold onto one
// destination (e.g. merging all halogens). The catch-all policy matches
// NewSubset. Complexity: linear in the total number of origin ids.
func NewGroupedSubset(groups [][]int, includeCatchall bool) (*Subset, error) {
	s := &Subset{
		originToDest: make(map[int]int),
		numTypes:     len(groups),
		catchall:     includeCatchall,
	}
	for dest, group := range groups {
		for _, origin := range group {
			if origin < 0 {
				return nil, fmt.Errorf("%w: %d in group %d", ErrNegativeOrigin, origin, dest)
			}
			if prev, ok := s.originToDest[origin]; ok {
				return nil, fmt.Errorf(
					"%w: origin %d in groups %d and %d", ErrDuplicateOrigin, origin, prev, dest)
			}
			s.originToDest[origin] = dest
		}
	}
	if includeCatchall {
		s.numTypes++
	}

	return s, nil
}

// NumTypes returns the number of destination categories: the explicit
// groups plus one when the catch-all is enabled.
func (s *Subset) NumTypes() int { return s.numTypes }

// MapType returns the destination id for origin. Origins outside the map
// go to the final catch-all destination when enabled, or typing.Unmapped.
func (s *Subset) MapType(origin int) int {
	if dest, ok := s.originToDest[origin]; ok {
		return dest
	}
	if s.catchall {
		return s.numTypes - 1
	}

	return typing.Unmapped
}

// TypeNames returns nil: this mapper supplies no vocabulary of its own.
// Callers needing destination labels combine the mapping with the origin
// typer's names.
func (s *Subset) TypeNames() []string { return nil }
