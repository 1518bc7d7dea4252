package acgtrie

import (
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// checkTree checks that n rows form one tree rooted at row 0: the root label
// is empty, every child ref is in range and not the root, every other row is
// the child of exactly one row, and every label is well formed.
func checkTree(n uint64, at func(rowstore.Ref) *rowstore.Row) error {
	if n == 0 {
		return ErrNoRows
	}
	if n > rowstore.MaxRows {
		return fmt.Errorf("%w: %d rows", ErrCorrupt, n)
	}
	if at(rowstore.Root).Label != label.Empty {
		return fmt.Errorf("%w: root label %q", ErrCorrupt, at(rowstore.Root).Label)
	}

	parents := make([]uint8, n)
	for i := uint64(0); i < n; i++ {
		r := at(rowstore.Ref(i))
		if !label.Valid(r.Label.Uint64()) {
			return fmt.Errorf("%w: row %d label %#x", ErrCorrupt, i, r.Label.Uint64())
		}
		for b, c := range r.Children {
			if c == rowstore.NoRef {
				continue
			}
			if uint64(c) >= n {
				return fmt.Errorf("%w: row %d child %s ref %d >= %d", ErrCorrupt, i, label.Base(b), c, n)
			}
			if parents[c] > 0 {
				return fmt.Errorf("%w: row %d has more than one parent", ErrCorrupt, c)
			}
			parents[c]++
		}
	}
	for i := uint64(1); i < n; i++ {
		if parents[i] == 0 {
			return fmt.Errorf("%w: row %d is unreachable", ErrCorrupt, i)
		}
	}
	return reachable(n, at)
}

// reachable walks from the root. With exactly one parent for every non root
// row, a row is only missed when it sits on a cycle.
func reachable(n uint64, at func(rowstore.Ref) *rowstore.Row) error {
	seen := uint64(0)
	stack := []rowstore.Ref{rowstore.Root}
	for len(stack) > 0 {
		ref := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		seen++
		for _, c := range at(ref).Children {
			if c != rowstore.NoRef {
				stack = append(stack, c)
			}
		}
	}
	if seen != n {
		return fmt.Errorf("%w: %d of %d rows reachable from the root", ErrCorrupt, seen, n)
	}
	return nil
}

// Verify checks the structure of the trie and its count invariants:
//   - the rows form a tree rooted at row 0 with valid labels
//   - a row's count is at least the sum of its children's counts
//   - every row other than the root has a positive count
func (t *Trie) Verify() error {
	if err := checkTree(t.rows.Len(), t.rows.At); err != nil {
		return err
	}

	var err error
	t.rows.Each(func(ref rowstore.Ref, r *rowstore.Row) bool {
		var sum uint64
		for _, c := range r.Children {
			if c != rowstore.NoRef {
				sum += t.rows.At(c).Count
			}
		}
		if r.Count < sum {
			err = fmt.Errorf("%w: row %d count %d < children %d", ErrInvariant, ref, r.Count, sum)
			return false
		}
		if ref != rowstore.Root && r.Count == 0 {
			err = fmt.Errorf("%w: row %d has a zero count", ErrInvariant, ref)
			return false
		}
		return true
	})
	return err
}
