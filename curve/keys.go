package curve

import (
	"fmt"

	"github.com/forestrie/go-sfcurves/bitops"
)

// KeyFunc computes an order key for (x, y) in a key of maxBits.
type KeyFunc func(x, y uint32, maxBits uint) (uint64, error)

var orderKeys = map[OrderKind]KeyFunc{
	ZOrder:          ZIndex,
	GrayOrder:       GrayOrderIndex,
	DoubleGrayOrder: DoubleGrayOrderIndex,
}

// KeyFunc returns the key function for k, or ErrInvalidArgument if k is not
// a known ordering.
func (k OrderKind) KeyFunc() (KeyFunc, error) {
	f, ok := orderKeys[k]
	if !ok {
		return nil, fmt.Errorf("%w: unknown order kind %v", ErrInvalidArgument, k)
	}
	return f, nil
}

// Key returns the order key of c for k.
func (k OrderKind) Key(c Coordinate, maxBits uint) (uint64, error) {
	f, err := k.KeyFunc()
	if err != nil {
		return 0, err
	}
	return f(c.X, c.Y, maxBits)
}

// interleave merges x and y into a Morton code: bit 2i is bit i of x and bit
// 2i+1 is bit i of y.
func interleave(x, y uint64, maxBits uint) (uint64, error) {
	dx, err := bitops.Dilate(x, maxBits)
	if err != nil {
		return 0, err
	}
	dy, err := bitops.Dilate(y, maxBits)
	if err != nil {
		return 0, err
	}
	return dx | dy<<1, nil
}

// ZIndex returns the position of (x, y) along the Z-order (Morton) curve.
//
//	ZIndex(1, 1) = 0b11  = 3
//	ZIndex(2, 1) = 0b110 = 6
func ZIndex(x, y uint32, maxBits uint) (uint64, error) {
	return interleave(uint64(x), uint64(y), maxBits)
}

// GrayOrderIndex returns the position of (x, y) along the Gray order. The
// Morton code is treated as a Gray code and decoded, so cells that are
// consecutive in this order have Morton codes differing in exactly one bit.
func GrayOrderIndex(x, y uint32, maxBits uint) (uint64, error) {
	z, err := interleave(uint64(x), uint64(y), maxBits)
	if err != nil {
		return 0, err
	}
	return bitops.GrayDecode(z), nil
}

// DoubleGrayOrderIndex Gray encodes each axis, interleaves the codes and then
// Gray decodes the result.
//
// This is a composition of the transforms above and is not claimed to match
// any named curve. The operation order is significant and must be kept.
func DoubleGrayOrderIndex(x, y uint32, maxBits uint) (uint64, error) {
	// GrayEncode never raises the bit length, so the encoded axes stay in
	// range whenever x and y are.
	z, err := interleave(bitops.GrayEncode(uint64(x)), bitops.GrayEncode(uint64(y)), maxBits)
	if err != nil {
		return 0, err
	}
	return bitops.GrayDecode(z), nil
}

// ZIndexCoordinate is the inverse of ZIndex.
func ZIndexCoordinate(key uint64, maxBits uint) (Coordinate, error) {
	if err := bitops.CheckWidth(maxBits); err != nil {
		return Coordinate{}, err
	}
	if maxBits < bitops.MaxKeyBits && key >= uint64(1)<<maxBits {
		return Coordinate{}, fmt.Errorf("%w: key %d is wider than %d bits", ErrOutOfRange, key, maxBits)
	}
	x, err := bitops.Compact(key, maxBits)
	if err != nil {
		return Coordinate{}, err
	}
	y, err := bitops.Compact(key>>1, maxBits)
	if err != nil {
		return Coordinate{}, err
	}
	return Coordinate{X: uint32(x), Y: uint32(y)}, nil
}
