package curve

import "iter"

// TraversalSegments yields the pairs (set[i], set[i+1]) for every i in
// [0, Len()-1). This is the polyline a renderer draws for a sorted set.
//
// The sequence is lazy and may be ranged over any number of times. It is
// empty for sets with fewer than two coordinates.
func TraversalSegments(set CoordinateSet) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		for i := 1; i < len(set.coords); i++ {
			if !yield(Segment{From: set.coords[i-1], To: set.coords[i]}) {
				return
			}
		}
	}
}
