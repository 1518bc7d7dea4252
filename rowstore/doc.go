/*
Package rowstore is an append only arena of fixed width trie rows.

Rows live in buckets of 2^p rows each. A bucket, once allocated, is never
moved or resized, so a *Row obtained from At stays valid while further rows
are appended. Rows are addressed by Ref, a dense uint32 index in append
order. Row 0 is reserved for the root by its users, which lets a zero Ref in
a child slot mean "no child".

Allocation is accounted at bucket granularity: Allocated reports the bytes
reserved by every bucket, including unused rows in the last one.
*/
package rowstore
