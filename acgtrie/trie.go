package acgtrie

import (
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// Trie owns a row store whose row 0 is the root.
//
// A Trie is not safe for concurrent use. Readers may share a Trie only while
// nothing inserts into it.
type Trie struct {
	rows *rowstore.Store
}

// New returns a trie holding only the root.
func New(opts ...rowstore.Option) (*Trie, error) {
	rows, err := rowstore.New(opts...)
	if err != nil {
		return nil, err
	}
	if _, err := rows.Append(rowstore.Row{}); err != nil {
		return nil, err
	}
	return &Trie{rows: rows}, nil
}

// FromRows rebuilds a trie from rows in ref order, as persisted by a column
// writer. The rows are checked to form a single tree rooted at row 0 with
// valid labels before anything is copied.
func FromRows(rows []rowstore.Row, opts ...rowstore.Option) (*Trie, error) {
	if err := checkTree(uint64(len(rows)), func(ref rowstore.Ref) *rowstore.Row {
		return &rows[ref]
	}); err != nil {
		return nil, err
	}

	opts = append([]rowstore.Option{rowstore.WithCapacityHint(uint64(len(rows)))}, opts...)
	store, err := rowstore.New(opts...)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		if _, err := store.Append(rows[i]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCapacityExhausted, err)
		}
	}
	return &Trie{rows: store}, nil
}

// Len returns the number of rows, root included.
func (t *Trie) Len() uint64 {
	return t.rows.Len()
}

// Allocated returns the bytes reserved for rows.
func (t *Trie) Allocated() uint64 {
	return t.rows.Allocated()
}

// Row returns a copy of the row at ref.
func (t *Trie) Row(ref rowstore.Ref) (rowstore.Row, error) {
	return t.rows.Get(ref)
}

// Each calls fn with a copy of every row in ref order until fn returns false.
func (t *Trie) Each(fn func(ref rowstore.Ref, r rowstore.Row) bool) {
	t.rows.Each(func(ref rowstore.Ref, r *rowstore.Row) bool {
		return fn(ref, *r)
	})
}

// Edge returns the bases spelled from the root down to and including the
// label of ref. It walks the whole trie and is meant for diagnostics.
func (t *Trie) Edge(ref rowstore.Ref) ([]label.Base, error) {
	if ref >= rowstore.Ref(t.rows.Len()) {
		return nil, fmt.Errorf("%w: %d", rowstore.ErrRefOutOfRange, ref)
	}
	parent := make([]rowstore.Ref, t.rows.Len())
	branch := make([]label.Base, t.rows.Len())
	t.rows.Each(func(p rowstore.Ref, r *rowstore.Row) bool {
		for b, c := range r.Children {
			if c != rowstore.NoRef {
				parent[c] = p
				branch[c] = label.Base(b)
			}
		}
		return true
	})

	var parts [][]label.Base
	for cur := ref; ; cur = parent[cur] {
		part := t.rows.At(cur).Label.Bases()
		if cur == rowstore.Root {
			parts = append(parts, part)
			break
		}
		parts = append(parts, append([]label.Base{branch[cur]}, part...))
	}
	var seq []label.Base
	for i := len(parts) - 1; i >= 0; i-- {
		seq = append(seq, parts[i]...)
	}
	return seq, nil
}
