/*
Package columns persists trie rows to flat files and reads them back.

Two layouts are supported, both little endian and in ref order.

Column files, one per field, named <prefix>.<COLUMN>:

	.COUNT   uint64   row count
	.A .C    uint32   child refs, 0 for none
	.G .T    uint32
	.SEQ     uint64   packed label

Packed rows, <prefix>.rows, 32 bytes per row:

	| count | A   | C   | G   | T   | seq  |
	| 0   7 | 8 11|12 15|16 19|20 23|24  31|

A CBOR manifest, <prefix>.manifest, records the build id, the insertion mode,
the row count, the checksum of the trie and which layouts were written. The
row count of a column is its file size divided by its width, and every column
must agree.
*/
package columns
