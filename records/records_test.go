package records

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnLonginotto/ACGTrie/label"
	"github.com/JohnLonginotto/ACGTrie/trietesting"
)

func TestParseLine(t *testing.T) {
	type args struct {
		line string
	}
	tests := []struct {
		name      string
		args      args
		wantSeq   string
		wantCount uint64
		wantErr   error
	}{
		{"simple", args{"ACGT,3"}, "ACGT", 3, nil},
		{"lower case", args{"acgt,1"}, "ACGT", 1, nil},
		{"trailing space", args{"ACGT,12 \r"}, "ACGT", 12, nil},
		{"spaces around comma", args{"ACGT , 5"}, "ACGT", 5, nil},
		{"no comma", args{"ACGT 3"}, "", 0, ErrMissingComma},
		{"zero count", args{"ACGT,0"}, "", 0, ErrBadCount},
		{"negative count", args{"ACGT,-2"}, "", 0, ErrBadCount},
		{"word count", args{"ACGT,many"}, "", 0, ErrBadCount},
		{"empty count", args{"ACGT,"}, "", 0, ErrBadCount},
		{"empty sequence", args{",4"}, "", 0, ErrEmptySeq},
		{"N base", args{"ACNT,4"}, "", 0, ErrBadBase},
		{"comma in sequence", args{"AC,GT,4"}, "", 0, ErrBadBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLine(tt.args.line)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSeq, label.BasesString(got.Seq))
			assert.Equal(t, tt.wantCount, got.Count)
		})
	}
}

func TestReader(t *testing.T) {
	in := "ACGT,3\n\nACGG,2\n  \nT,1"
	r := NewReader(strings.NewReader(in))

	var got []Record
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		require.NoError(t, err)
		got = append(got, rec)
	}
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{got[0].Line, got[1].Line, got[2].Line})
	assert.Equal(t, uint64(2), got[1].Count)
	assert.Equal(t, 5, r.Lines())
}

func TestReaderErrorHasLine(t *testing.T) {
	r := NewReader(strings.NewReader("ACGT,3\nACGT;3\n"))
	_, err := r.Next()
	require.NoError(t, err)
	_, err = r.Next()
	require.ErrorIs(t, err, ErrMissingComma)
	assert.Contains(t, err.Error(), "line 2")
}

func TestLoad(t *testing.T) {
	logger.New("NOOP")
	defer logger.OnExit()

	tc := trietesting.NewTestContext(t, trietesting.TestConfig{Seed: 1})
	recs := tc.Records(100)

	var total uint64
	n, err := Load(context.Background(), strings.NewReader(trietesting.CSV(recs)), func(r Record) error {
		total += r.Count
		return nil
	}, WithProgress(tc.GetLog(), 10))
	require.NoError(t, err)
	assert.Equal(t, 100, n)

	var want uint64
	for _, r := range recs {
		want += r.Count
	}
	assert.Equal(t, want, total)
}

func TestLoadStops(t *testing.T) {
	errStop := errors.New("stop")
	in := "A,1\nC,1\nG,1\nT,1\n"

	n, err := Load(context.Background(), strings.NewReader(in), func(r Record) error {
		if r.Line == 3 {
			return errStop
		}
		return nil
	})
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, 2, n)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err = Load(ctx, strings.NewReader(in), func(Record) error { return nil })
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, n)

	_, err = Load(context.Background(), strings.NewReader("A,1\nA,x\n"), func(Record) error { return nil })
	require.ErrorIs(t, err, ErrBadCount)
}
