package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	type args struct {
		bases string
	}
	tests := []struct {
		name string
		args args
		want uint64
	}{
		{"empty", args{""}, 0},
		{"A", args{"A"}, 1 << 58},
		{"T", args{"T"}, 1<<58 | 3<<56},
		{"CG", args{"CG"}, 2<<58 | 1<<56 | 2<<54},
		{"ACGT", args{"ACGT"}, 4<<58 | 0<<56 | 1<<54 | 2<<52 | 3<<50},
		{"29 T", args{"TTTTTTTTTTTTTTTTTTTTTTTTTTTTT"}, 29<<58 | (1<<58 - 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Pack(MustParseBases(tt.args.bases))
			assert.Equal(t, tt.want, l.Uint64())
			assert.Equal(t, len(tt.args.bases), l.Len())
			assert.Equal(t, tt.args.bases, l.String())
			assert.True(t, Valid(l.Uint64()))
		})
	}
}

func TestNew(t *testing.T) {
	_, err := New(make([]Base, MaxLen+1))
	require.ErrorIs(t, err, ErrTooLong)

	_, err = New([]Base{A, 4})
	require.ErrorIs(t, err, ErrInvalidBase)

	l, err := New(MustParseBases("GATTACA"))
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", l.String())

	require.Panics(t, func() { Pack(make([]Base, MaxLen+1)) })
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr error
	}{
		{"upper", "ACGT", "ACGT", nil},
		{"lower", "acgt", "ACGT", nil},
		{"mixed", "aCgT", "ACGT", nil},
		{"N", "ACNT", "", ErrInvalidBase},
		{"space", "AC T", "", ErrInvalidBase},
		{"too long", "ACGTACGTACGTACGTACGTACGTACGTAC", "", ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(tt.in)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, l.String())
		})
	}
}

func TestAt(t *testing.T) {
	l := Pack(MustParseBases("TGCA"))
	assert.Equal(t, []Base{T, G, C, A}, l.Bases())
	for i, want := range []Base{T, G, C, A} {
		assert.Equal(t, want, l.At(i))
	}
	require.Panics(t, func() { l.At(4) })
	require.Panics(t, func() { l.At(-1) })
	require.Panics(t, func() { Empty.At(0) })
}

func TestSub(t *testing.T) {
	const full = "ACGTTGCAACGGTTAACCGGTTACGATCG" // 29 bases
	l := Pack(MustParseBases(full))
	require.Equal(t, MaxLen, l.Len())

	for start := 0; start <= MaxLen; start++ {
		for end := start; end <= MaxLen; end++ {
			sub := l.Sub(start, end)
			require.Equal(t, full[start:end], sub.String(), "sub [%d:%d]", start, end)
			require.Equal(t, Pack(MustParseBases(full[start:end])), sub, "sub [%d:%d]", start, end)
			require.True(t, Valid(sub.Uint64()))
		}
	}

	assert.Equal(t, Empty, l.Sub(7, 7))
	require.Panics(t, func() { l.Sub(3, 2) })
	require.Panics(t, func() { Pack(MustParseBases("ACG")).Sub(0, 4) })
}

func TestSubComposes(t *testing.T) {
	l := Pack(MustParseBases("GATTACAGATTACA"))
	for a := 0; a <= l.Len(); a++ {
		for b := a; b <= l.Len(); b++ {
			outer := l.Sub(a, l.Len())
			for c := 0; c <= b-a; c++ {
				require.Equal(t, l.Sub(a+c, b), outer.Sub(c, b-a))
			}
		}
	}
}

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		v    uint64
		want bool
	}{
		{"zero", 0, true},
		{"length 30", 30 << 58, false},
		{"length 63", 63 << 58, false},
		{"stray low bit", 1<<58 | 1, false},
		{"bits past length", 1<<58 | 1<<53, false},
		{"payload without length", 1 << 56, false},
		{"one G", 1<<58 | 2<<56, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Valid(tt.v))
		})
	}
}

func TestCommonPrefixLen(t *testing.T) {
	tests := []struct {
		name  string
		label string
		seq   string
		want  int
	}{
		{"both empty", "", "", 0},
		{"empty label", "", "ACG", 0},
		{"empty seq", "ACG", "", 0},
		{"equal", "ACGT", "ACGT", 4},
		{"seq shorter", "ACGT", "AC", 2},
		{"seq longer", "AC", "ACGT", 2},
		{"first differs", "ACGT", "CCGT", 0},
		{"last differs", "ACGT", "ACGA", 3},
		{"middle differs", "ACGTACGT", "ACGTTCGT", 4},
		{"full width", "ACGTTGCAACGGTTAACCGGTTACGATCG", "ACGTTGCAACGGTTAACCGGTTACGATCGAAA", 29},
		{"full width last", "ACGTTGCAACGGTTAACCGGTTACGATCG", "ACGTTGCAACGGTTAACCGGTTACGATCA", 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Pack(MustParseBases(tt.label))
			assert.Equal(t, tt.want, CommonPrefixLen(l, MustParseBases(tt.seq)))
		})
	}
}

func TestBasesString(t *testing.T) {
	seq, err := ParseBases("gattaca")
	require.NoError(t, err)
	assert.Equal(t, "GATTACA", BasesString(seq))
	assert.Equal(t, "G", G.String())
}
