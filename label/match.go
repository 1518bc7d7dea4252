package label

import "math/bits"

// CommonPrefixLen returns how many leading bases of l equal the leading bases
// of seq. The result never exceeds min(l.Len(), len(seq)).
func CommonPrefixLen(l Label, seq []Base) int {
	n := min(l.Len(), len(seq))
	if n == 0 {
		return 0
	}
	other := uint64(Pack(seq[:n])) & payloadMask
	// the first differing bit pair locates the first differing base
	diff := (l.Payload() ^ other) >> (lengthShift - 2*n)
	if diff == 0 {
		return n
	}
	return (bits.LeadingZeros64(diff) - (64 - 2*n)) / 2
}
