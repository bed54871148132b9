package bitops

import (
	"fmt"
	"math/bits"
)

// MaxKeyBits is the widest interleaved key supported.
const MaxKeyBits = 64

func BitLength(num uint64) int {
	return bits.Len64(num)
}

// IsPow2 determines if num is a perfect power of 2.
func IsPow2(num uint64) bool {
	return num != 0 && num&(num-1) == 0
}

// CheckWidth validates maxBits as an interleaved key width: a power of two
// in [2, MaxKeyBits].
func CheckWidth(maxBits uint) error {
	if maxBits < 2 || maxBits > MaxKeyBits || !IsPow2(uint64(maxBits)) {
		return fmt.Errorf("%w: key width %d is not a power of two in [2, %d]", ErrInvalidArgument, maxBits, MaxKeyBits)
	}
	return nil
}

// AxisBits returns the number of bits each axis may occupy in a key of
// maxBits.
func AxisBits(maxBits uint) uint {
	return maxBits / 2
}

// AxisLimit returns the exclusive upper bound for an axis value in a key of
// maxBits, i.e. 2^(maxBits/2).
//
// NOTE: for maxBits = 64 the limit is 2^32 which still fits in uint64.
func AxisLimit(maxBits uint) uint64 {
	return uint64(1) << AxisBits(maxBits)
}

// CheckAxis reports whether v fits in one axis of a maxBits wide key. The
// caller is responsible for having checked maxBits with CheckWidth.
func CheckAxis(v uint64, maxBits uint) error {
	if v >= AxisLimit(maxBits) {
		return fmt.Errorf("%w: %d needs %d bits, only %d available", ErrOutOfRange, v, BitLength(v), AxisBits(maxBits))
	}
	return nil
}
