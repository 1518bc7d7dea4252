// Package config holds the build settings read from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/columns"
	"github.com/JohnLonginotto/ACGTrie/records"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

var ErrInvalid = errors.New("config: invalid")

type SealConfig struct {
	Issuer  string `yaml:"issuer"`
	Subject string `yaml:"subject"`
	KeyFile string `yaml:"key_file"`
}

type PublishConfig struct {
	Container string `yaml:"container"`
	Prefix    string `yaml:"prefix"`
	Overwrite bool   `yaml:"overwrite"`
}

type Config struct {
	LogLevel      string        `yaml:"log_level"`
	Mode          acgtrie.Mode  `yaml:"mode"`
	BucketPower   uint8         `yaml:"bucket_power"`
	RowsHint      uint64        `yaml:"rows_hint"`
	ProgressEvery int           `yaml:"progress_every"`
	Output        string        `yaml:"output"`
	Formats       []string      `yaml:"formats"`
	Seal          SealConfig    `yaml:"seal"`
	Publish       PublishConfig `yaml:"publish"`
}

func Default() Config {
	return Config{
		LogLevel:      "INFO",
		Mode:          acgtrie.ModeWhole,
		BucketPower:   rowstore.DefaultBucketPower,
		ProgressEvery: records.DefaultProgressEvery,
		Output:        "acgtrie",
		Formats:       []string{columns.FormatColumns},
		Seal: SealConfig{
			Issuer:  "acgtrie",
			Subject: "acgtrie-build",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (c Config) Validate() error {
	if c.BucketPower < rowstore.MinBucketPower || c.BucketPower > rowstore.MaxBucketPower {
		return fmt.Errorf("%w: bucket_power %d not in [%d, %d]",
			ErrInvalid, c.BucketPower, rowstore.MinBucketPower, rowstore.MaxBucketPower)
	}
	if c.ProgressEvery < 0 {
		return fmt.Errorf("%w: progress_every %d", ErrInvalid, c.ProgressEvery)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output prefix is empty", ErrInvalid)
	}
	if len(c.Formats) == 0 {
		return fmt.Errorf("%w: no output formats", ErrInvalid)
	}
	for _, f := range c.Formats {
		if f != columns.FormatColumns && f != columns.FormatRows {
			return fmt.Errorf("%w: format %q", ErrInvalid, f)
		}
	}
	if c.Mode != acgtrie.ModeWhole && c.Mode != acgtrie.ModeSuffixes {
		return fmt.Errorf("%w: mode %d", ErrInvalid, c.Mode)
	}
	return nil
}

// RowOptions returns the row store options the config selects.
func (c Config) RowOptions() []rowstore.Option {
	opts := []rowstore.Option{rowstore.WithBucketPower(c.BucketPower)}
	if c.RowsHint > 0 {
		opts = append(opts, rowstore.WithCapacityHint(c.RowsHint))
	}
	return opts
}
