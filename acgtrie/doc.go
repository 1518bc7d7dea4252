/*
Package acgtrie is a path compressed trie over DNA bases with weighted counts.

Each inserted sequence carries a positive weight. Every node on the path of a
sequence accumulates that weight, so the count of a node is the total weight
of the sequences that pass through or end at it. Shared prefixes are stored
once.

# Nodes

A node is a rowstore.Row: a count, four child refs indexed by base, and a
packed label. An edge from a parent to Children[b] spells the base b followed
by the child's label. Row 0 is the root, has an empty label, and is never a
child, so a zero child ref means the slot is empty.

	root ""
	 └─A─ "CG" (5)
	      ├─G─ "" (2)
	      └─T─ "" (3)

The trie above holds ACGT with weight 3 and ACGG with weight 2.

# Scan

Scan is the single traversal used for insertion and queries. It walks the
input against labels from the root and stops at the first point where the
input ends, a label disagrees with the input, or the next child is missing.
Nodes left behind on the way down get the scan weight added; the node the
scan stops at does not, leaving that to the caller.

# Insert

Insert scans with the sequence weight, splits the stopping node when the scan
stopped part way through its label, adds the weight to the stopping node and
then appends new rows for whatever input is left, MaxLen+1 bases per row: one
base to select the child slot and up to label.MaxLen for the label.

Before touching the trie, Insert checks the worst case number of rows it can
append against the remaining row capacity. A sequence that does not fit fails
with ErrCapacityExhausted and leaves the trie as it was.

# Queries

Lookup only reports nodes where the sequence ends exactly on a node boundary.
Locate and Count also accept a sequence ending inside a label: the count of
the node whose edge holds the last base is the frequency of that sequence.
*/
package acgtrie
