package trietesting

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"

	"github.com/JohnLonginotto/ACGTrie/label"
)

// Record is a generated input record.
type Record struct {
	Seq   string
	Count uint64
}

type TestConfig struct {
	// The generator is seeded from Seed. Keep it fixed so the generated records
	// are the same from run to run.
	Seed        uint64
	MinLen      int
	MaxLen      int
	MaxCount    uint64
	LabelPrefix string
	LogLevel    string // defaults to NOOP
}

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	Cfg TestConfig
	rng *rand.Rand
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	if cfg.MaxLen == 0 {
		cfg.MaxLen = 50
	}
	if cfg.MinLen == 0 {
		cfg.MinLen = 1
	}
	if cfg.MaxCount == 0 {
		cfg.MaxCount = 10
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "NOOP"
	}
	if cfg.LabelPrefix == "" {
		cfg.LabelPrefix = "trietesting"
	}
	if cfg.MinLen > cfg.MaxLen {
		t.Fatalf("bad test config: min length %d > max length %d", cfg.MinLen, cfg.MaxLen)
	}

	logger.New(cfg.LogLevel)
	return TestContext{
		Log: logger.Sugar.WithServiceName(cfg.LabelPrefix),
		T:   t,
		Cfg: cfg,
		rng: rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

// Bases returns n random bases as text.
func (c *TestContext) Bases(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte(label.Alphabet[c.rng.IntN(4)])
	}
	return sb.String()
}

// Records generates n records with lengths in [MinLen, MaxLen] and counts in
// [1, MaxCount].
func (c *TestContext) Records(n int) []Record {
	recs := make([]Record, n)
	for i := range recs {
		l := c.Cfg.MinLen + c.rng.IntN(c.Cfg.MaxLen-c.Cfg.MinLen+1)
		recs[i] = Record{
			Seq:   c.Bases(l),
			Count: 1 + c.rng.Uint64N(c.Cfg.MaxCount),
		}
	}
	return recs
}

// Shuffle returns a reordered copy of recs.
func (c *TestContext) Shuffle(recs []Record) []Record {
	out := append([]Record(nil), recs...)
	c.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// CSV renders recs as SEQUENCE,COUNT lines.
func CSV(recs []Record) string {
	var sb strings.Builder
	for _, r := range recs {
		fmt.Fprintf(&sb, "%s,%d\n", r.Seq, r.Count)
	}
	return sb.String()
}
