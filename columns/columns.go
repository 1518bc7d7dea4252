package columns

import (
	"errors"

	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

const (
	ColumnCount = "COUNT"
	ColumnA     = "A"
	ColumnC     = "C"
	ColumnG     = "G"
	ColumnT     = "T"
	ColumnSeq   = "SEQ"

	RowsSuffix     = ".rows"
	ManifestSuffix = ".manifest"

	FormatColumns = "columns"
	FormatRows    = "rows"
)

// Names lists the columns in write order.
var Names = []string{ColumnA, ColumnC, ColumnG, ColumnT, ColumnCount, ColumnSeq}

// Widths gives the byte width of each column value.
var Widths = map[string]int{
	ColumnCount: 8,
	ColumnA:     4,
	ColumnC:     4,
	ColumnG:     4,
	ColumnT:     4,
	ColumnSeq:   8,
}

var (
	ErrColumnSize     = errors.New("columns: column size is not a multiple of its width")
	ErrColumnLength   = errors.New("columns: columns disagree on row count")
	ErrRowsSize       = errors.New("columns: rows file size is not a multiple of the row width")
	ErrBadLabel       = errors.New("columns: invalid packed label")
	ErrManifest       = errors.New("columns: manifest does not match the trie")
	ErrManifestFormat = errors.New("columns: unknown manifest version or layout")
	ErrUnknownFormat  = errors.New("columns: unknown output format")
)

// Path returns the file name for column name under prefix.
func Path(prefix, name string) string {
	return prefix + "." + name
}

// RowsPath returns the packed rows file name under prefix.
func RowsPath(prefix string) string {
	return prefix + RowsSuffix
}

// ManifestPath returns the manifest file name under prefix.
func ManifestPath(prefix string) string {
	return prefix + ManifestSuffix
}

// RowSource is the read only view of a trie the writers need.
type RowSource interface {
	Len() uint64
	Each(fn func(ref rowstore.Ref, r rowstore.Row) bool)
}
