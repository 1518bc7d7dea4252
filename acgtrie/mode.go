package acgtrie

import (
	"fmt"
	"strings"

	"github.com/JohnLonginotto/ACGTrie/label"
)

// Mode selects what Add inserts for one record.
type Mode uint8

const (
	// ModeWhole inserts the record once, building a prefix trie of records.
	ModeWhole Mode = iota
	// ModeSuffixes inserts every suffix of the record, so the count of a node
	// is the number of occurrences of its sequence anywhere in the input.
	ModeSuffixes
)

func (m Mode) String() string {
	switch m {
	case ModeWhole:
		return "whole"
	case ModeSuffixes:
		return "suffixes"
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode accepts the names returned by Mode.String, ignoring case.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whole", "":
		return ModeWhole, nil
	case "suffixes", "suffix":
		return ModeSuffixes, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

func (m Mode) MarshalText() ([]byte, error) {
	if m != ModeWhole && m != ModeSuffixes {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, uint8(m))
	}
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// Add inserts one record according to mode. Like Insert, it either adds the
// whole record or nothing.
func (t *Trie) Add(seq []label.Base, weight uint64, mode Mode) error {
	if weight == 0 {
		return ErrZeroWeight
	}
	if err := checkBases(seq); err != nil {
		return err
	}
	switch mode {
	case ModeWhole:
		if err := t.reserve(rowsNeeded(len(seq))); err != nil {
			return err
		}
		t.insert(seq, weight)
	case ModeSuffixes:
		var need uint64
		for start := range seq {
			need += rowsNeeded(len(seq) - start)
		}
		if err := t.reserve(need); err != nil {
			return err
		}
		for start := range seq {
			t.insert(seq[start:], weight)
		}
	default:
		return fmt.Errorf("%w: %d", ErrUnknownMode, uint8(mode))
	}
	return nil
}
