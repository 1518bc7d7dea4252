package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/columns"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		check   func(t *testing.T, cfg Config)
		wantErr error
	}{
		{
			name: "overrides",
			yaml: "mode: suffixes\nbucket_power: 12\nrows_hint: 5000\noutput: out/kmers\nformats: [columns, rows]\npublish:\n  container: tries\n",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, acgtrie.ModeSuffixes, cfg.Mode)
				assert.Equal(t, uint8(12), cfg.BucketPower)
				assert.Equal(t, uint64(5000), cfg.RowsHint)
				assert.Equal(t, "out/kmers", cfg.Output)
				assert.Equal(t, []string{columns.FormatColumns, columns.FormatRows}, cfg.Formats)
				assert.Equal(t, "tries", cfg.Publish.Container)
				// untouched fields keep their defaults
				assert.Equal(t, "INFO", cfg.LogLevel)
				assert.Equal(t, "acgtrie", cfg.Seal.Issuer)
				assert.Len(t, cfg.RowOptions(), 2)
			},
		},
		{
			name: "empty file",
			yaml: "",
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{name: "bad mode", yaml: "mode: kmers\n", wantErr: acgtrie.ErrUnknownMode},
		{name: "bad bucket power", yaml: "bucket_power: 40\n", wantErr: ErrInvalid},
		{name: "bad format", yaml: "formats: [parquet]\n", wantErr: ErrInvalid},
		{name: "no formats", yaml: "formats: []\n", wantErr: ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "acgtrie.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			cfg, err := Load(path)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestSaveLoad(t *testing.T) {
	cfg := Default()
	cfg.Mode = acgtrie.ModeSuffixes
	cfg.Seal.KeyFile = "seal.pem"

	path := filepath.Join(t.TempDir(), "acgtrie.yaml")
	require.NoError(t, Save(path, cfg))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: suffixes")
}
