package acgtrie

import (
	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// ScanResult describes where a scan stopped.
type ScanResult struct {
	// Matched is true when every input base matched, whether the input ended
	// on a node boundary or inside a label.
	Matched bool
	// Ref is the row the scan stopped at.
	Ref rowstore.Ref
	// Consumed is the number of input bases matched before stopping.
	Consumed int
	// Split is the position in Ref's label where the scan stopped, or
	// NoSplit when it stopped after the whole label.
	Split int
}

// Exact reports whether the input ended exactly at the end of Ref's label.
func (r ScanResult) Exact() bool {
	return r.Matched && r.Split == NoSplit
}

// Scan matches seq against the trie from the root and adds add to the count
// of every row it descends from. Pass add == 0 for a read only scan. To scan
// a range of a longer sequence, slice it.
//
// Every element of seq must be a valid base.
func (t *Trie) Scan(seq []label.Base, add uint64) ScanResult {
	ref := rowstore.Root
	cursor := 0
	for {
		row := t.rows.At(ref)
		n := row.Label.Len()
		m := label.CommonPrefixLen(row.Label, seq[cursor:])
		if m < n {
			// stopped inside the label: either the input ran out or a base differs
			return ScanResult{
				Matched:  cursor+m == len(seq),
				Ref:      ref,
				Consumed: cursor + m,
				Split:    m,
			}
		}
		cursor += n
		if cursor == len(seq) {
			return ScanResult{Matched: true, Ref: ref, Consumed: cursor, Split: NoSplit}
		}
		next := row.Children[seq[cursor]&3]
		if next == rowstore.NoRef {
			return ScanResult{Ref: ref, Consumed: cursor, Split: NoSplit}
		}
		row.Count += add
		cursor++
		ref = next
	}
}
