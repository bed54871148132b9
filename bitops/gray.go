package bitops

// GrayEncode converts n to its reflected binary Gray code.
func GrayEncode(n uint64) uint64 {
	return n ^ (n >> 1)
}

// GrayDecode converts a reflected binary Gray code back to the binary value
// it encodes. GrayDecode(GrayEncode(n)) == n for all n.
func GrayDecode(g uint64) uint64 {
	var n uint64
	for ; g != 0; g >>= 1 {
		n ^= g
	}
	return n
}
