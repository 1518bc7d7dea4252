// Package records reads SEQUENCE,COUNT input lines.
package records

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/JohnLonginotto/ACGTrie/label"
)

const (
	// DefaultProgressEvery is how many records Load reads between progress
	// messages.
	DefaultProgressEvery = 1 << 17

	maxLineBytes = 1 << 20
)

var (
	ErrMissingComma = errors.New("records: missing comma")
	ErrBadCount     = errors.New("records: count is not a positive integer")
	ErrEmptySeq     = errors.New("records: empty sequence")
	ErrBadBase      = errors.New("records: sequence has a base outside ACGT")
)

// Record is one parsed input line.
type Record struct {
	Seq   []label.Base
	Count uint64
	// Line is the 1 based line number the record was read from.
	Line int
}

// ParseLine parses "SEQUENCE,COUNT". The sequence is everything before the
// last comma.
func ParseLine(s string) (Record, error) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexByte(s, ',')
	if i < 0 {
		return Record{}, ErrMissingComma
	}
	seqText := strings.TrimSpace(s[:i])
	if seqText == "" {
		return Record{}, ErrEmptySeq
	}
	count, err := strconv.ParseUint(strings.TrimSpace(s[i+1:]), 10, 64)
	if err != nil || count == 0 {
		return Record{}, fmt.Errorf("%w: %q", ErrBadCount, s[i+1:])
	}
	seq, err := label.ParseBases(seqText)
	if err != nil {
		return Record{}, fmt.Errorf("%w: %w", ErrBadBase, err)
	}
	return Record{Seq: seq, Count: count}, nil
}

// Reader reads records line by line. Blank lines are skipped.
type Reader struct {
	sc    *bufio.Scanner
	lines int
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Next returns the next record, or io.EOF after the last one. Parse errors
// carry the line number.
func (r *Reader) Next() (Record, error) {
	for r.sc.Scan() {
		r.lines++
		text := r.sc.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		rec, err := ParseLine(text)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w", r.lines, err)
		}
		rec.Line = r.lines
		return rec, nil
	}
	if err := r.sc.Err(); err != nil {
		return Record{}, fmt.Errorf("line %d: %w", r.lines+1, err)
	}
	return Record{}, io.EOF
}

// Lines returns the number of lines consumed so far, blank ones included.
func (r *Reader) Lines() int {
	return r.lines
}

type LoadOptions struct {
	log   logger.Logger
	every int
}

type LoadOption func(*LoadOptions)

// WithProgress logs the running record count every n records.
func WithProgress(log logger.Logger, every int) LoadOption {
	return func(o *LoadOptions) {
		o.log = log
		o.every = every
	}
}

// Load reads every record from r and hands it to fn. It stops at the first
// error from the input or fn, and checks ctx between records. It returns the
// number of records handed to fn without error.
func Load(ctx context.Context, r io.Reader, fn func(Record) error, opts ...LoadOption) (int, error) {
	o := LoadOptions{every: DefaultProgressEvery}
	for _, opt := range opts {
		opt(&o)
	}

	rd := NewReader(r)
	n := 0
	for {
		if err := ctx.Err(); err != nil {
			return n, err
		}
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		if err := fn(rec); err != nil {
			return n, fmt.Errorf("line %d: %w", rec.Line, err)
		}
		n++
		if o.log != nil && o.every > 0 && n%o.every == 0 {
			o.log.Infof("records: %d read", n)
		}
	}
}
