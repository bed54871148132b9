package curve

import (
	"cmp"
	"slices"
)

type keyedCoordinate struct {
	key   uint64
	coord Coordinate
}

// SortByOrder returns a new set holding the coordinates of set sorted
// ascending by the key kind selects. The sort is stable, so coordinates
// with equal keys keep their relative input order. set is not modified.
func SortByOrder(set CoordinateSet, kind OrderKind) (CoordinateSet, error) {
	keyed, err := keyCoordinates(set, kind)
	if err != nil {
		return CoordinateSet{}, err
	}
	sortKeyed(keyed)

	sorted := make([]Coordinate, len(keyed))
	for i, kc := range keyed {
		sorted[i] = kc.coord
	}
	return CoordinateSet{gridN: set.gridN, maxBits: set.maxBits, order: kind, coords: sorted}, nil
}

// Keys returns the kind key of every coordinate in set, in set order. A
// renderer uses this to label the cells of a traversal.
func Keys(set CoordinateSet, kind OrderKind) ([]uint64, error) {
	keyed, err := keyCoordinates(set, kind)
	if err != nil {
		return nil, err
	}
	keys := make([]uint64, len(keyed))
	for i, kc := range keyed {
		keys[i] = kc.key
	}
	return keys, nil
}

// sortKeyed sorts keyed ascending by key, keeping the input order of equal
// keys.
func sortKeyed(keyed []keyedCoordinate) {
	slices.SortStableFunc(keyed, func(a, b keyedCoordinate) int {
		return cmp.Compare(a.key, b.key)
	})
}

func keyCoordinates(set CoordinateSet, kind OrderKind) ([]keyedCoordinate, error) {
	keyOf, err := kind.KeyFunc()
	if err != nil {
		return nil, err
	}
	keyed := make([]keyedCoordinate, len(set.coords))
	for i, c := range set.coords {
		key, err := keyOf(c.X, c.Y, set.maxBits)
		if err != nil {
			return nil, err
		}
		keyed[i] = keyedCoordinate{key: key, coord: c}
	}
	return keyed, nil
}
