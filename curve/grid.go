package curve

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"github.com/forestrie/go-sfcurves/bitops"
)

// CoordinateSet is an immutable sequence of grid cells together with the
// grid resolution and key width it was built for.
//
// Sets are only produced by GenerateGrid, NewCoordinateSet and SortByOrder,
// so every coordinate in a set is known to fit the key width.
type CoordinateSet struct {
	gridN   int
	maxBits uint
	order   OrderKind
	coords  []Coordinate
}

// GenerateGrid returns one Coordinate for every cell of a gridN x gridN grid.
// The set is in generation order (x outer, y inner); callers sort it with
// SortByOrder before use.
func GenerateGrid(gridN int, opts ...Option) (CoordinateSet, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return CoordinateSet{}, err
	}
	if gridN <= 0 {
		return CoordinateSet{}, fmt.Errorf("%w: grid size must be > 0, got %d", ErrInvalidArgument, gridN)
	}
	if uint64(gridN) > bitops.AxisLimit(o.MaxBits) {
		return CoordinateSet{}, fmt.Errorf(
			"%w: grid size %d exceeds %d cells per axis for a %d bit key",
			ErrOutOfRange, gridN, bitops.AxisLimit(o.MaxBits), o.MaxBits)
	}
	if gridN > math.MaxInt/gridN {
		return CoordinateSet{}, fmt.Errorf("%w: %d x %d cells do not fit an int", ErrOutOfRange, gridN, gridN)
	}

	coords := make([]Coordinate, 0, gridN*gridN)
	for x := 0; x < gridN; x++ {
		for y := 0; y < gridN; y++ {
			coords = append(coords, Coordinate{X: uint32(x), Y: uint32(y)})
		}
	}
	return CoordinateSet{gridN: gridN, maxBits: o.MaxBits, coords: coords}, nil
}

// NewCoordinateSet builds a set from a caller supplied list of coordinates,
// kept in the given order. The list must cover an n x n grid exactly once,
// where n*n == len(coords); anything sparse, duplicated or empty is rejected
// with ErrInvalidArgument. The list is copied.
func NewCoordinateSet(coords []Coordinate, opts ...Option) (CoordinateSet, error) {
	o, err := NewOptions(opts...)
	if err != nil {
		return CoordinateSet{}, err
	}
	for _, c := range coords {
		for _, v := range []uint64{uint64(c.X), uint64(c.Y)} {
			if err := bitops.CheckAxis(v, o.MaxBits); err != nil {
				return CoordinateSet{}, fmt.Errorf("coordinate %v: %w", c, err)
			}
		}
	}

	gridN := isqrt(len(coords))
	if gridN == 0 || gridN*gridN != len(coords) {
		return CoordinateSet{}, fmt.Errorf("%w: %d coordinates do not cover a square grid", ErrInvalidArgument, len(coords))
	}
	seen := make([]bool, len(coords))
	for _, c := range coords {
		if int(c.X) >= gridN || int(c.Y) >= gridN {
			return CoordinateSet{}, fmt.Errorf("%w: coordinate %v lies outside the %d x %d grid", ErrInvalidArgument, c, gridN, gridN)
		}
		i := int(c.Y)*gridN + int(c.X)
		if seen[i] {
			return CoordinateSet{}, fmt.Errorf("%w: duplicate coordinate %v", ErrInvalidArgument, c)
		}
		seen[i] = true
	}
	return CoordinateSet{gridN: gridN, maxBits: o.MaxBits, coords: slices.Clone(coords)}, nil
}

// isqrt returns floor(sqrt(n)) for n >= 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func (s CoordinateSet) Len() int { return len(s.coords) }

// At returns the i'th coordinate. It panics if i is out of range, like a
// slice index.
func (s CoordinateSet) At(i int) Coordinate { return s.coords[i] }

// All yields the coordinates in set order.
func (s CoordinateSet) All() iter.Seq2[int, Coordinate] {
	return slices.All(s.coords)
}

// Coordinates returns a copy of the coordinates in set order.
func (s CoordinateSet) Coordinates() []Coordinate { return slices.Clone(s.coords) }

// GridN is the grid resolution the set covers.
func (s CoordinateSet) GridN() int { return s.gridN }

func (s CoordinateSet) MaxBits() uint { return s.maxBits }

// Order is the ordering the set was sorted by, or zero for generation order.
func (s CoordinateSet) Order() OrderKind { return s.order }
