package bitops

import "fmt"

// LargestMultipleAtMost returns the greatest multiple of divisor that is <=
// bound. It is used to align a drawn grid of cells to whole pixels.
//
//	LargestMultipleAtMost(705, 8) = 704
//	LargestMultipleAtMost(5, 8)   = 0
//	LargestMultipleAtMost(-5, 8)  = -8
func LargestMultipleAtMost(bound, divisor int) (int, error) {
	if divisor <= 0 {
		return 0, fmt.Errorf("%w: divisor must be > 0, got %d", ErrInvalidArgument, divisor)
	}
	rem := bound % divisor
	if rem < 0 {
		rem += divisor
	}
	return bound - rem, nil
}
