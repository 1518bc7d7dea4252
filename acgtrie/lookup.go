package acgtrie

import (
	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// Lookup returns the row at which seq ends exactly on a node boundary.
func (t *Trie) Lookup(seq []label.Base) (rowstore.Ref, bool) {
	if checkBases(seq) != nil {
		return 0, false
	}
	res := t.Scan(seq, 0)
	if !res.Exact() {
		return 0, false
	}
	return res.Ref, true
}

// Locate returns the row whose edge holds the last base of seq. Unlike
// Lookup, seq may end inside a label.
func (t *Trie) Locate(seq []label.Base) (rowstore.Ref, bool) {
	if checkBases(seq) != nil {
		return 0, false
	}
	res := t.Scan(seq, 0)
	if !res.Matched {
		return 0, false
	}
	return res.Ref, true
}

// Count returns the total weight of inserted sequences that start with seq,
// or 0 when none do.
func (t *Trie) Count(seq []label.Base) uint64 {
	ref, ok := t.Locate(seq)
	if !ok {
		return 0
	}
	return t.rows.At(ref).Count
}
