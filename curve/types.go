package curve

import (
	"fmt"

	"github.com/forestrie/go-sfcurves/bitops"
)

// DefaultMaxBits is the default interleaved key width, which limits each
// axis to 2^16 cells.
const DefaultMaxBits = 32

// Coordinate is one cell of an N x N grid.
type Coordinate struct {
	X uint32
	Y uint32
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Segment is one edge of a traversal polyline.
type Segment struct {
	From Coordinate
	To   Coordinate
}

// OrderKind selects the order key a CoordinateSet is sorted by. The zero
// value is not a valid order and marks a set that is still in generation
// order.
type OrderKind uint8

const (
	ZOrder OrderKind = iota + 1
	GrayOrder
	DoubleGrayOrder
)

// OrderKinds lists every supported ordering in a stable order.
var OrderKinds = []OrderKind{ZOrder, GrayOrder, DoubleGrayOrder}

var orderNames = map[OrderKind]string{
	ZOrder:          "z",
	GrayOrder:       "gray",
	DoubleGrayOrder: "double-gray",
}

func (k OrderKind) String() string {
	if name, ok := orderNames[k]; ok {
		return name
	}
	return fmt.Sprintf("OrderKind(%d)", uint8(k))
}

// ParseOrderKind returns the OrderKind named by name, as produced by String.
func ParseOrderKind(name string) (OrderKind, error) {
	for k, n := range orderNames {
		if n == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown order %q", ErrInvalidArgument, name)
}

// The curve package reports the bitops sentinels so errors.Is matches
// regardless of which layer detected the problem.
var (
	ErrInvalidArgument = bitops.ErrInvalidArgument
	ErrOutOfRange      = bitops.ErrOutOfRange
)
