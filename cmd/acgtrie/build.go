package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/columns"
	"github.com/JohnLonginotto/ACGTrie/config"
	"github.com/JohnLonginotto/ACGTrie/publish"
	"github.com/JohnLonginotto/ACGTrie/records"
	"github.com/JohnLonginotto/ACGTrie/seal"
)

type buildOptions struct {
	input       string
	output      string
	mode        string
	rows        uint64
	bucketPower uint8
	formats     []string
	sealKey     string
	container   string
}

func newBuildCmd(root *rootOptions) *cobra.Command {
	o := &buildOptions{}
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build a trie from SEQUENCE,COUNT lines and write it out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, done, err := root.setup()
			if err != nil {
				return err
			}
			defer done()
			if err := o.apply(cmd, &cfg); err != nil {
				return err
			}
			in := cmd.InOrStdin()
			if o.input != "" && o.input != "-" {
				f, err := os.Open(o.input)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			_, err = runBuild(cmd.Context(), log, cfg, in)
			return err
		},
	}
	f := cmd.Flags()
	f.StringVarP(&o.input, "input", "i", "", "input file, stdin when empty or -")
	f.StringVarP(&o.output, "output", "o", "", "output file prefix")
	f.StringVar(&o.mode, "mode", "", "insertion mode: whole or suffixes")
	f.Uint64Var(&o.rows, "rows", 0, "expected row count, pre sizes the row store")
	f.Uint8Var(&o.bucketPower, "bucket-power", 0, "rows per bucket as a power of two")
	f.StringSliceVar(&o.formats, "format", nil, "output layouts: columns, rows")
	f.StringVar(&o.sealKey, "seal-key", "", "PEM EC private key to seal the build with")
	f.StringVar(&o.container, "publish", "", "blob container to publish the build to")
	return cmd
}

// apply overrides cfg with the flags that were set.
func (o *buildOptions) apply(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("mode") {
		m, err := acgtrie.ParseMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Mode = m
	}
	if f.Changed("rows") {
		cfg.RowsHint = o.rows
	}
	if f.Changed("bucket-power") {
		cfg.BucketPower = o.bucketPower
	}
	if f.Changed("format") {
		cfg.Formats = o.formats
	}
	if f.Changed("seal-key") {
		cfg.Seal.KeyFile = o.sealKey
	}
	if f.Changed("publish") {
		cfg.Publish.Container = o.container
	}
	return cfg.Validate()
}

type buildResult struct {
	Trie     *acgtrie.Trie
	Manifest columns.Manifest
	Files    []string
}

func runBuild(ctx context.Context, log logger.Logger, cfg config.Config, in io.Reader) (buildResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	trie, err := acgtrie.New(cfg.RowOptions()...)
	if err != nil {
		return buildResult{}, err
	}
	n, err := records.Load(ctx, in, func(r records.Record) error {
		return trie.Add(r.Seq, r.Count, cfg.Mode)
	}, records.WithProgress(log, cfg.ProgressEvery))
	if err != nil {
		return buildResult{}, err
	}

	sum := trie.Checksum()
	log.Infof("%s records inserted (%s mode) in %s", humanize.Comma(int64(n)), cfg.Mode, time.Since(start).Round(time.Millisecond))
	log.Infof("%s rows, %s allocated, %d bytes per row",
		humanize.Comma(int64(sum.Rows)), humanize.IBytes(sum.Allocated), sum.Allocated/sum.Rows)
	log.Infof("%s", sum)

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return buildResult{}, err
		}
	}

	id := uuid.New()
	var files []string
	for _, format := range cfg.Formats {
		switch format {
		case columns.FormatColumns:
			paths, err := columns.WriteColumnFiles(ctx, cfg.Output, trie)
			if err != nil {
				return buildResult{}, err
			}
			files = append(files, paths...)
		case columns.FormatRows:
			path, err := columns.WriteRowsFile(ctx, cfg.Output, trie)
			if err != nil {
				return buildResult{}, err
			}
			files = append(files, path)
		}
	}
	m, err := columns.NewManifest(trie, id, cfg.Mode, cfg.Formats...)
	if err != nil {
		return buildResult{}, err
	}
	path, err := columns.WriteManifestFile(cfg.Output, m)
	if err != nil {
		return buildResult{}, err
	}
	files = append(files, path)
	log.Infof("build %s written: %s", id, strings.Join(files, " "))

	if cfg.Seal.KeyFile != "" {
		path, err := writeSeal(cfg, trie, id)
		if err != nil {
			return buildResult{}, err
		}
		files = append(files, path)
		log.Infof("sealed %s", path)
	}

	if cfg.Publish.Container != "" {
		store, err := publish.NewDevStorer(cfg.Publish.Container)
		if err != nil {
			return buildResult{}, err
		}
		p := publish.NewPublisher(
			publish.PublisherConfig{Prefix: cfg.Publish.Prefix},
			log, publish.StorerPut(store, cfg.Publish.Overwrite))
		if _, err := p.Publish(ctx, files, publish.Tags(id, sum.Rows, cfg.Mode)); err != nil {
			return buildResult{}, err
		}
	}
	return buildResult{Trie: trie, Manifest: m, Files: files}, nil
}

func writeSeal(cfg config.Config, trie *acgtrie.Trie, id uuid.UUID) (string, error) {
	key, err := seal.ReadKeyFile(cfg.Seal.KeyFile)
	if err != nil {
		return "", err
	}
	signer, err := seal.NewSigner(key)
	if err != nil {
		return "", err
	}
	kid, err := seal.KeyID(&key.PublicKey)
	if err != nil {
		return "", err
	}
	codec, err := seal.NewCodec()
	if err != nil {
		return "", err
	}
	state := seal.NewState(trie.Checksum(), id, cfg.Mode, time.Now())
	msg, err := seal.NewSealer(cfg.Seal.Issuer, codec).Sign1(signer, kid, &key.PublicKey, cfg.Seal.Subject, state)
	if err != nil {
		return "", fmt.Errorf("seal: %w", err)
	}
	path := seal.Path(cfg.Output)
	if err := os.WriteFile(path, msg, 0o644); err != nil {
		return "", err
	}
	return path, nil
}
