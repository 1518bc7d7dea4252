package rowstore

import (
	"unsafe"

	"github.com/JohnLonginotto/ACGTrie/label"
)

// RowBytes is the fixed in memory and on disk width of a Row.
//
// Layout:
//   - count (uint64)
//   - children[4] (uint32 each, indexed by label.Base)
//   - label (uint64)
const RowBytes = 32

// Row is one trie node.
type Row struct {
	Count    uint64
	Children [4]Ref
	Label    label.Label
}

var (
	_ [RowBytes - int(unsafe.Sizeof(Row{}))]byte
	_ [int(unsafe.Sizeof(Row{})) - RowBytes]byte
)

// Child returns the ref stored for branch base b.
func (r *Row) Child(b label.Base) Ref {
	return r.Children[b&3]
}

// NumChildren counts the occupied child slots.
func (r *Row) NumChildren() int {
	n := 0
	for _, c := range r.Children {
		if c != NoRef {
			n++
		}
	}
	return n
}

// IsLeaf reports whether r has no children.
func (r *Row) IsLeaf() bool {
	return r.Children == [4]Ref{}
}
