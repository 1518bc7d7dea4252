package columns

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// cancelCheckRows is how often a writer looks at its context.
const cancelCheckRows = 1 << 16

// columnValue extracts the value of column name from r.
func columnValue(name string, r *rowstore.Row) uint64 {
	switch name {
	case ColumnCount:
		return r.Count
	case ColumnA:
		return uint64(r.Children[label.A])
	case ColumnC:
		return uint64(r.Children[label.C])
	case ColumnG:
		return uint64(r.Children[label.G])
	case ColumnT:
		return uint64(r.Children[label.T])
	case ColumnSeq:
		return r.Label.Uint64()
	}
	panic("columns: unknown column " + name)
}

// WriteColumn streams column name of every row in src to w.
func WriteColumn(ctx context.Context, w io.Writer, name string, src RowSource) error {
	width, ok := Widths[name]
	if !ok {
		return fmt.Errorf("columns: unknown column %q", name)
	}
	bw := bufio.NewWriterSize(w, 1<<16)
	var buf [8]byte
	var err error
	src.Each(func(ref rowstore.Ref, r rowstore.Row) bool {
		if ref%cancelCheckRows == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		v := columnValue(name, &r)
		if width == 4 {
			binary.LittleEndian.PutUint32(buf[:4], uint32(v))
		} else {
			binary.LittleEndian.PutUint64(buf[:], v)
		}
		_, err = bw.Write(buf[:width])
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

// WriteRows streams every row of src to w as packed row records.
func WriteRows(ctx context.Context, w io.Writer, src RowSource) error {
	bw := bufio.NewWriterSize(w, 1<<16)
	var rec [RowRecordBytes]byte
	var err error
	src.Each(func(ref rowstore.Ref, r rowstore.Row) bool {
		if ref%cancelCheckRows == 0 {
			if err = ctx.Err(); err != nil {
				return false
			}
		}
		EncodeRow(rec[:], r)
		_, err = bw.Write(rec[:])
		return err == nil
	})
	if err != nil {
		return err
	}
	return bw.Flush()
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}

// WriteColumnFiles writes the six column files for src under prefix, one
// goroutine per column, and returns their paths in Names order.
func WriteColumnFiles(ctx context.Context, prefix string, src RowSource) ([]string, error) {
	paths := make([]string, len(Names))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range Names {
		paths[i] = Path(prefix, name)
		g.Go(func() error {
			err := writeFile(paths[i], func(w io.Writer) error {
				return WriteColumn(ctx, w, name, src)
			})
			if err != nil {
				return fmt.Errorf("column %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

// WriteRowsFile writes the packed rows file for src under prefix.
func WriteRowsFile(ctx context.Context, prefix string, src RowSource) (string, error) {
	path := RowsPath(prefix)
	err := writeFile(path, func(w io.Writer) error {
		return WriteRows(ctx, w, src)
	})
	if err != nil {
		return "", fmt.Errorf("rows: %w", err)
	}
	return path, nil
}
