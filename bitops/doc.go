package bitops

/*

# Bit primitives for 2-D space filling curve keys

This package provides the width bounded integer operations that the curve
orderings are composed from:

- bit dilation (inserting a zero after every bit) and its inverse
- reflected binary Gray coding in both directions
- a small sizing helper for aligning a grid to a pixel extent

It follows the same "functional primitives" style as `go-merklelog/mmr`:
small composable functions over uint64, no state, no logging.

## Key width

Every interleaved key has a fixed width, maxBits, which must be a power of
two between 2 and 64. Each axis value contributes half of that width, so an
axis value must be strictly less than 2^(maxBits/2). The checked entry points
(Dilate, Compact) report a violation as ErrOutOfRange rather than silently
dropping the high bits.

## Dilate

Dilation spreads the bits of v apart so that bit i lands on bit 2i:

	v          =         d c b a
	Dilate(v)  = 0 d 0 c 0 b 0 a

The divide and conquer form works in log2(maxBits) rounds. Starting with
step = maxBits/2 and halving down to 1, each round does

	v = (v | v << step) & mask(step)

where mask(step) is the periodic pattern with `step` ones followed by `step`
zeros, repeated across maxBits bits. For maxBits = 32 the masks are

	step 16  0x0000ffff
	step  8  0x00ff00ff
	step  4  0x0f0f0f0f
	step  2  0x33333333
	step  1  0x55555555

The first round is a no-op for in range values. It is kept so the round count
is exactly log2(maxBits) for every width.

Two dilated values combine into a Morton (Z-order) key with

	Dilate(x) | Dilate(y) << 1

## Gray coding

GrayEncode(n) = n ^ (n >> 1). Consecutive integers differ by exactly one bit
once encoded. GrayDecode inverts this by folding every right shift of the
code back in with xor, which rebuilds the binary value from the most
significant bit down.

*/
