package acgtrie

import (
	"bufio"
	"fmt"
	"io"

	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

const tableFormat = "%8v %8v %8v %8v %8v %8v %-8v\n"

// WriteTable prints one line per row: the ref, the A C T G child refs, the
// count and the label. When maxRows is positive and the trie is longer, the
// table stops after maxRows rows with a "..." line.
func (t *Trie) WriteTable(w io.Writer, maxRows int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, tableFormat, "row", "A", "C", "T", "G", "#", "Seq")
	t.rows.Each(func(ref rowstore.Ref, r *rowstore.Row) bool {
		if maxRows > 0 && int(ref) >= maxRows {
			fmt.Fprintln(bw, "...")
			return false
		}
		fmt.Fprintf(bw, tableFormat,
			ref, r.Children[0], r.Children[1], r.Children[3], r.Children[2], r.Count, r.Label)
		return true
	})
	return bw.Flush()
}
