package label

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// MaxLen is the number of bases a single label can hold.
	MaxLen = 29

	// LengthBits is the width of the length field at the top of the word.
	LengthBits  = 6
	lengthShift = 64 - LengthBits
	payloadMask = uint64(1)<<lengthShift - 1
)

// Label is a packed run of at most MaxLen bases.
type Label uint64

// Empty is the zero length label.
const Empty Label = 0

var ErrTooLong = errors.New("label: more than 29 bases")

// Pack encodes seq without checking it. len(seq) must not exceed MaxLen and
// every element must be a valid Base. The length check panics.
func Pack(seq []Base) Label {
	if len(seq) > MaxLen {
		panic(fmt.Sprintf("label: pack of %d bases", len(seq)))
	}
	var v uint64
	for _, b := range seq {
		v = v<<2 | uint64(b&3)
	}
	n := uint64(len(seq))
	return Label(n<<lengthShift | v<<(lengthShift-2*n))
}

// New checks seq and encodes it.
func New(seq []Base) (Label, error) {
	if len(seq) > MaxLen {
		return Empty, fmt.Errorf("%w: got %d", ErrTooLong, len(seq))
	}
	for i, b := range seq {
		if b > T {
			return Empty, fmt.Errorf("%w: code %d at offset %d", ErrInvalidBase, b, i)
		}
	}
	return Pack(seq), nil
}

// Parse encodes a string of bases.
func Parse(s string) (Label, error) {
	seq, err := ParseBases(s)
	if err != nil {
		return Empty, err
	}
	return New(seq)
}

// Valid reports whether v is a well formed label word: the length is at most
// MaxLen and every bit below the last base is zero.
func Valid(v uint64) bool {
	n := v >> lengthShift
	if n > MaxLen {
		return false
	}
	unused := lengthShift - 2*n
	return v&(uint64(1)<<unused-1) == 0
}

// Len returns the number of bases held.
func (l Label) Len() int {
	return int(uint64(l) >> lengthShift)
}

// At returns the base at position i.
func (l Label) At(i int) Base {
	if i < 0 || i >= l.Len() {
		panic(fmt.Sprintf("label: index %d out of range [0:%d]", i, l.Len()))
	}
	return Base(uint64(l) >> (lengthShift - 2 - 2*i) & 3)
}

// Sub returns the bases in [start, end) as a new label.
func (l Label) Sub(start, end int) Label {
	if start < 0 || start > end || end > l.Len() {
		panic(fmt.Sprintf("label: sub [%d:%d] out of range [0:%d]", start, end, l.Len()))
	}
	n := end - start
	if n == 0 {
		return Empty
	}
	// move base start to the top of the word, then keep the top 2n bits
	v := uint64(l) << LengthBits << (2 * start)
	v >>= 64 - 2*n
	return Label(uint64(n)<<lengthShift | v<<(lengthShift-2*n))
}

// Bases decodes the label.
func (l Label) Bases() []Base {
	seq := make([]Base, l.Len())
	for i := range seq {
		seq[i] = l.At(i)
	}
	return seq
}

// Payload returns the base bits without the length field.
func (l Label) Payload() uint64 {
	return uint64(l) & payloadMask
}

func (l Label) Uint64() uint64 {
	return uint64(l)
}

func (l Label) String() string {
	var sb strings.Builder
	n := l.Len()
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(l.At(i).Byte())
	}
	return sb.String()
}
