package bitops

// periodicMask returns the maxBits wide pattern of `step` ones followed by
// `step` zeros, starting with ones at bit 0.
//
// periodicMask(8, 32) = 0x00ff00ff
func periodicMask(step, maxBits uint) uint64 {
	var mask uint64
	run := uint64(1)<<step - 1
	for at := uint(0); at < maxBits; at += 2 * step {
		mask |= run << at
	}
	return mask
}

// Dilate inserts a zero bit above every bit of value, so that bit i of value
// becomes bit 2i of the result. See doc.go for the algorithm.
//
// maxBits is the width of the interleaved key and must satisfy CheckWidth.
// value must be < 2^(maxBits/2), otherwise ErrOutOfRange is returned.
func Dilate(value uint64, maxBits uint) (uint64, error) {
	if err := CheckWidth(maxBits); err != nil {
		return 0, err
	}
	if err := CheckAxis(value, maxBits); err != nil {
		return 0, err
	}
	return dilate(value, maxBits), nil
}

// dilate is Dilate without the width and range checks.
func dilate(v uint64, maxBits uint) uint64 {
	for step := maxBits / 2; step >= 1; step /= 2 {
		v = (v | v<<step) & periodicMask(step, maxBits)
	}
	return v
}

// Compact is the inverse of Dilate: it discards the odd bits of value and
// packs the even bits together, so bit 2i becomes bit i.
//
// Compact(Dilate(v)) == v for every in range v. Odd bits are ignored, which
// makes Compact(key >> 1) recover the second axis of an interleaved key.
func Compact(value uint64, maxBits uint) (uint64, error) {
	if err := CheckWidth(maxBits); err != nil {
		return 0, err
	}
	return compact(value, maxBits), nil
}

func compact(v uint64, maxBits uint) uint64 {
	v &= periodicMask(1, maxBits)
	for step := uint(1); step < maxBits/2; step *= 2 {
		v = (v | v>>step) & periodicMask(2*step, maxBits)
	}
	return v
}
