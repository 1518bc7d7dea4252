package acgtrie

import (
	"errors"

	"github.com/JohnLonginotto/ACGTrie/label"
)

// NoSplit is the Split value of a scan that stopped on a node boundary.
const NoSplit = -1

// maxChunk is the number of input bases consumed by one extension row: the
// branch base plus a full label.
const maxChunk = label.MaxLen + 1

var (
	ErrCapacityExhausted = errors.New("acgtrie: row capacity exhausted")
	ErrZeroWeight        = errors.New("acgtrie: weight must be positive")
	ErrInvalidBase       = errors.New("acgtrie: base code out of range")
	ErrUnknownMode       = errors.New("acgtrie: unknown insertion mode")
	ErrNoRows            = errors.New("acgtrie: no rows")
	ErrCorrupt           = errors.New("acgtrie: corrupt rows")
	ErrInvariant         = errors.New("acgtrie: invariant violated")
)
