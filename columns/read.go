package columns

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// Opener opens a named file for reading.
type Opener interface {
	Open(string) (io.ReadCloser, error)
}

// FileOpener opens files from the local filesystem.
type FileOpener struct{}

func (FileOpener) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

func readAll(opener Opener, name string) ([]byte, error) {
	rc, err := opener.Open(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// ReadColumns reads the column files under prefix into rows.
func ReadColumns(opener Opener, prefix string) ([]rowstore.Row, error) {
	data := make(map[string][]byte, len(Names))
	rows := -1
	for _, name := range Names {
		b, err := readAll(opener, Path(prefix, name))
		if err != nil {
			return nil, fmt.Errorf("column %s: %w", name, err)
		}
		width := Widths[name]
		if len(b)%width != 0 {
			return nil, fmt.Errorf("%w: %s is %d bytes", ErrColumnSize, name, len(b))
		}
		n := len(b) / width
		if rows >= 0 && n != rows {
			return nil, fmt.Errorf("%w: %s has %d rows, expected %d", ErrColumnLength, name, n, rows)
		}
		rows = n
		data[name] = b
	}

	out := make([]rowstore.Row, rows)
	u32 := func(name string, i int) rowstore.Ref {
		return rowstore.Ref(binary.LittleEndian.Uint32(data[name][4*i:]))
	}
	for i := range out {
		r := &out[i]
		r.Count = binary.LittleEndian.Uint64(data[ColumnCount][8*i:])
		r.Children[label.A] = u32(ColumnA, i)
		r.Children[label.C] = u32(ColumnC, i)
		r.Children[label.G] = u32(ColumnG, i)
		r.Children[label.T] = u32(ColumnT, i)
		seq := binary.LittleEndian.Uint64(data[ColumnSeq][8*i:])
		if !label.Valid(seq) {
			return nil, fmt.Errorf("%w: row %d value %#x", ErrBadLabel, i, seq)
		}
		r.Label = label.Label(seq)
	}
	return out, nil
}

// ReadRows reads a packed rows file.
func ReadRows(opener Opener, path string) ([]rowstore.Row, error) {
	b, err := readAll(opener, path)
	if err != nil {
		return nil, err
	}
	if len(b)%RowRecordBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes", ErrRowsSize, len(b))
	}
	out := make([]rowstore.Row, len(b)/RowRecordBytes)
	for i := range out {
		off := RowRecordOffset(rowstore.Ref(i))
		out[i], err = DecodeRow(b[off : off+RowRecordBytes])
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	return out, nil
}
