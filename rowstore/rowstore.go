package rowstore

import (
	"errors"
	"fmt"
	"math"
)

// Ref is a row index.
type Ref uint32

const (
	// Root is the ref of the first appended row.
	Root Ref = 0
	// NoRef marks an empty child slot. It equals Root, which is never a child.
	NoRef Ref = 0

	// MaxRows is the most rows a store can hold.
	MaxRows = uint64(math.MaxUint32)

	DefaultBucketPower = 10
	MinBucketPower     = 1
	MaxBucketPower     = 24
)

var (
	ErrCapacityExceeded = errors.New("rowstore: row capacity exceeded")
	ErrBucketPower      = errors.New("rowstore: bucket power out of range")
	ErrRefOutOfRange    = errors.New("rowstore: ref out of range")
)

type Options struct {
	BucketPower  uint8
	CapacityHint uint64
}

type Option func(*Options)

// WithBucketPower sets p, where each bucket holds 2^p rows.
func WithBucketPower(p uint8) Option {
	return func(o *Options) {
		o.BucketPower = p
	}
}

// WithCapacityHint pre sizes the bucket directory for the expected number of
// rows. Buckets themselves are still allocated on demand.
func WithCapacityHint(rows uint64) Option {
	return func(o *Options) {
		o.CapacityHint = rows
	}
}

// Store is a bucketed row arena. It is not safe for concurrent mutation.
type Store struct {
	buckets [][]Row
	rows    uint64
	power   uint8
	mask    uint64
}

func New(opts ...Option) (*Store, error) {
	o := Options{BucketPower: DefaultBucketPower}
	for _, opt := range opts {
		opt(&o)
	}
	if o.BucketPower < MinBucketPower || o.BucketPower > MaxBucketPower {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrBucketPower, o.BucketPower, MinBucketPower, MaxBucketPower)
	}
	s := &Store{
		power: o.BucketPower,
		mask:  uint64(1)<<o.BucketPower - 1,
	}
	if o.CapacityHint > 0 {
		s.buckets = make([][]Row, 0, BucketsFor(min(o.CapacityHint, MaxRows), o.BucketPower))
	}
	return s, nil
}

// Append stores r and returns its ref.
func (s *Store) Append(r Row) (Ref, error) {
	if s.rows >= MaxRows {
		return 0, ErrCapacityExceeded
	}
	b := s.rows >> s.power
	if b == uint64(len(s.buckets)) {
		s.buckets = append(s.buckets, make([]Row, 1<<s.power))
	}
	ref := Ref(s.rows)
	s.buckets[b][s.rows&s.mask] = r
	s.rows++
	return ref, nil
}

// At returns the row for ref. The pointer remains valid across later appends.
// ref must be less than Len.
func (s *Store) At(ref Ref) *Row {
	i := uint64(ref)
	if i >= s.rows {
		panic(fmt.Sprintf("rowstore: ref %d out of range [0:%d]", ref, s.rows))
	}
	return &s.buckets[i>>s.power][i&s.mask]
}

// Get is the checked form of At and returns a copy.
func (s *Store) Get(ref Ref) (Row, error) {
	if uint64(ref) >= s.rows {
		return Row{}, fmt.Errorf("%w: %d >= %d", ErrRefOutOfRange, ref, s.rows)
	}
	return *s.At(ref), nil
}

// Len returns the number of rows appended.
func (s *Store) Len() uint64 {
	return s.rows
}

// Remaining returns how many more rows can be appended.
func (s *Store) Remaining() uint64 {
	return MaxRows - s.rows
}

func (s *Store) BucketPower() uint8 {
	return s.power
}

func (s *Store) BucketSize() uint64 {
	return uint64(1) << s.power
}

func (s *Store) Buckets() int {
	return len(s.buckets)
}

// Allocated returns the bytes reserved by all buckets.
func (s *Store) Allocated() uint64 {
	return uint64(len(s.buckets)) * s.BucketSize() * RowBytes
}

// Each calls fn for every row in ref order until fn returns false.
func (s *Store) Each(fn func(ref Ref, r *Row) bool) {
	for i := uint64(0); i < s.rows; i++ {
		if !fn(Ref(i), &s.buckets[i>>s.power][i&s.mask]) {
			return
		}
	}
}
