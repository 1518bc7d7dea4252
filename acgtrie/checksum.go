package acgtrie

import (
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// Checksum is a fold over every row. Sums wrap on overflow.
//
// Rows, Count and Seq depend only on the multiset of inserted records as long
// as no record is longer than label.MaxLen+1 bases. A, C, G and T sum child
// refs and so also depend on insertion order.
type Checksum struct {
	Rows      uint64
	Allocated uint64
	Count     uint64
	A         uint64
	C         uint64
	G         uint64
	T         uint64
	// Seq is the sum of the packed label integers.
	Seq uint64
}

// Checksum folds the current rows.
func (t *Trie) Checksum() Checksum {
	c := Checksum{
		Rows:      t.rows.Len(),
		Allocated: t.rows.Allocated(),
	}
	t.rows.Each(func(_ rowstore.Ref, r *rowstore.Row) bool {
		c.Count += r.Count
		c.A += uint64(r.Children[label.A])
		c.C += uint64(r.Children[label.C])
		c.G += uint64(r.Children[label.G])
		c.T += uint64(r.Children[label.T])
		c.Seq += r.Label.Uint64()
		return true
	})
	return c
}

// String prints the sums in the column order A C T G COUNT SEQ.
func (c Checksum) String() string {
	return fmt.Sprintf("Sums: %d %d %d %d %d %d", c.A, c.C, c.T, c.G, c.Count, c.Seq)
}

// Children returns the child sums indexed by base.
func (c Checksum) Children() [4]uint64 {
	return [4]uint64{c.A, c.C, c.G, c.T}
}
