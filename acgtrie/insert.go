package acgtrie

import (
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// rowsNeeded is the most rows a single insert of n bases can append: one for
// a split and one per extension chunk.
func rowsNeeded(n int) uint64 {
	return 1 + uint64((n+maxChunk-1)/maxChunk)
}

func checkBases(seq []label.Base) error {
	for i, b := range seq {
		if b > label.T {
			return fmt.Errorf("%w: code %d at offset %d", ErrInvalidBase, b, i)
		}
	}
	return nil
}

func (t *Trie) reserve(rows uint64) error {
	if rows > t.rows.Remaining() {
		return fmt.Errorf(
			"%w: need up to %d rows, %d remain: %w",
			ErrCapacityExhausted, rows, t.rows.Remaining(), rowstore.ErrCapacityExceeded)
	}
	return nil
}

// Insert adds weight for seq and returns the row at which seq ends.
//
// An insert either completes or, on error, leaves the trie unchanged.
func (t *Trie) Insert(seq []label.Base, weight uint64) (rowstore.Ref, error) {
	if weight == 0 {
		return 0, ErrZeroWeight
	}
	if err := checkBases(seq); err != nil {
		return 0, err
	}
	if err := t.reserve(rowsNeeded(len(seq))); err != nil {
		return 0, err
	}
	return t.insert(seq, weight), nil
}

// insert assumes seq is valid and that the rows it may need are available.
func (t *Trie) insert(seq []label.Base, weight uint64) rowstore.Ref {
	res := t.Scan(seq, weight)
	ref := res.Ref
	row := t.rows.At(ref)

	if res.Split != NoSplit {
		t.split(row, res.Split)
	}
	row.Count += weight

	for cursor := res.Consumed; cursor < len(seq); {
		end := min(cursor+maxChunk, len(seq))
		child := t.mustAppend(rowstore.Row{
			Count: weight,
			Label: label.Pack(seq[cursor+1 : end]),
		})
		row.Children[seq[cursor]] = child
		row = t.rows.At(child)
		ref = child
		cursor = end
	}
	return ref
}

// split moves the part of row's label after position s, along with row's
// children and count, to a new row hanging off row under the base at s.
func (t *Trie) split(row *rowstore.Row, s int) {
	n := row.Label.Len()
	branch := row.Label.At(s)
	tail := t.mustAppend(rowstore.Row{
		Count:    row.Count,
		Children: row.Children,
		Label:    row.Label.Sub(s+1, n),
	})
	row.Children = [4]rowstore.Ref{}
	row.Children[branch] = tail
	row.Label = row.Label.Sub(0, s)
}

func (t *Trie) mustAppend(r rowstore.Row) rowstore.Ref {
	ref, err := t.rows.Append(r)
	if err != nil {
		// capacity is reserved before any mutation
		panic(err)
	}
	return ref
}
