package label

import (
	"errors"
	"fmt"
	"strings"
)

// Base is a two bit nucleotide code.
type Base uint8

const (
	A Base = iota
	C
	G
	T
)

// Alphabet maps a base code to its letter.
const Alphabet = "ACGT"

var ErrInvalidBase = errors.New("label: invalid base")

// Byte returns the upper case letter for b.
func (b Base) Byte() byte {
	return Alphabet[b&3]
}

func (b Base) String() string {
	return string(b.Byte())
}

// BaseOf returns the code for the letter c. Lower case letters are accepted.
func BaseOf(c byte) (Base, bool) {
	switch c {
	case 'A', 'a':
		return A, true
	case 'C', 'c':
		return C, true
	case 'G', 'g':
		return G, true
	case 'T', 't':
		return T, true
	}
	return 0, false
}

// ParseBases converts a string of bases to codes. Any letter outside ACGT
// (either case) fails with ErrInvalidBase.
func ParseBases(s string) ([]Base, error) {
	seq := make([]Base, len(s))
	for i := 0; i < len(s); i++ {
		b, ok := BaseOf(s[i])
		if !ok {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidBase, s[i], i)
		}
		seq[i] = b
	}
	return seq, nil
}

// MustParseBases is ParseBases for literals known to be valid.
func MustParseBases(s string) []Base {
	seq, err := ParseBases(s)
	if err != nil {
		panic(err)
	}
	return seq
}

// BasesString renders codes as upper case letters.
func BasesString(seq []Base) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for _, b := range seq {
		sb.WriteByte(b.Byte())
	}
	return sb.String()
}
