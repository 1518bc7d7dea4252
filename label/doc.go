/*
Package label packs short runs of DNA bases into a single 64 bit word.

A base is one of the four symbols A, C, G and T, coded 0, 1, 2 and 3. A label
holds between 0 and MaxLen bases. The top six bits of the word carry the
length, the following 58 bits carry up to 29 two bit base codes with the
first base in the most significant position:

	bit  63       58 57 56 55 54          1  0
	    | length    | b0  | b1  | ... | b28 |

Bits below the last base are always zero. Two labels are therefore equal
exactly when they hold the same bases, and the integer value of a label can
be summed, stored and compared without decoding it.

Functions in this package that take positions assume the caller has checked
them against Len. Out of range positions panic, in the same way slice
indexing does.
*/
package label
