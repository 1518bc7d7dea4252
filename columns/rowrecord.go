package columns

import (
	"encoding/binary"
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// RowRecordBytes is the width of one packed row record.
const RowRecordBytes = rowstore.RowBytes

const (
	rowCountOffset    = 0
	rowChildrenOffset = 8
	rowSeqOffset      = 24
)

// RowRecordOffset returns the byte offset of ref in a packed rows file.
func RowRecordOffset(ref rowstore.Ref) uint64 {
	return uint64(ref) * RowRecordBytes
}

// EncodeRow writes r into rec, which must be RowRecordBytes long.
func EncodeRow(rec []byte, r rowstore.Row) {
	binary.LittleEndian.PutUint64(rec[rowCountOffset:], r.Count)
	for b, c := range r.Children {
		binary.LittleEndian.PutUint32(rec[rowChildrenOffset+4*b:], uint32(c))
	}
	binary.LittleEndian.PutUint64(rec[rowSeqOffset:], r.Label.Uint64())
}

// DecodeRow reads a row from rec and checks its label.
func DecodeRow(rec []byte) (rowstore.Row, error) {
	var r rowstore.Row
	r.Count = binary.LittleEndian.Uint64(rec[rowCountOffset:])
	for b := range r.Children {
		r.Children[b] = rowstore.Ref(binary.LittleEndian.Uint32(rec[rowChildrenOffset+4*b:]))
	}
	seq := binary.LittleEndian.Uint64(rec[rowSeqOffset:])
	if !label.Valid(seq) {
		return rowstore.Row{}, fmt.Errorf("%w: %#x", ErrBadLabel, seq)
	}
	r.Label = label.Label(seq)
	return r, nil
}
