package main

import (
	"fmt"

	"github.com/datatrails/go-datatrails-common/logger"
	"github.com/spf13/cobra"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/columns"
	"github.com/JohnLonginotto/ACGTrie/config"
	"github.com/JohnLonginotto/ACGTrie/label"
)

func loadTrie(log logger.Logger, cfg config.Config, prefix string) (*acgtrie.Trie, columns.Manifest, error) {
	prefix = prefixOr(prefix, cfg)
	trie, m, err := columns.Load(columns.FileOpener{}, prefix, cfg.RowOptions()...)
	if err != nil {
		return nil, columns.Manifest{}, fmt.Errorf("load %s: %w", prefix, err)
	}
	log.Debugf("loaded %s: %d rows, mode %s", prefix, trie.Len(), m.Mode)
	return trie, m, nil
}

func newLookupCmd(root *rootOptions) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "lookup SEQ...",
		Short: "Print the count and node of each sequence",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, done, err := root.setup()
			if err != nil {
				return err
			}
			defer done()
			trie, _, err := loadTrie(log, cfg, prefix)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, arg := range args {
				seq, err := label.ParseBases(arg)
				if err != nil {
					return err
				}
				node := "-"
				if ref, ok := trie.Lookup(seq); ok {
					node = fmt.Sprint(ref)
				}
				fmt.Fprintf(out, "%s\t%d\t%s\n", label.BasesString(seq), trie.Count(seq), node)
			}
			return nil
		},
	}
	prefixFlag(cmd, &prefix)
	return cmd
}

func newChecksumCmd(root *rootOptions) *cobra.Command {
	var prefix string
	cmd := &cobra.Command{
		Use:   "checksum",
		Short: "Print the checksum of a built trie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, done, err := root.setup()
			if err != nil {
				return err
			}
			defer done()
			trie, _, err := loadTrie(log, cfg, prefix)
			if err != nil {
				return err
			}
			sum := trie.Checksum()
			fmt.Fprintf(cmd.OutOrStdout(), "Rows: %d\n%s\n", sum.Rows, sum)
			return nil
		},
	}
	prefixFlag(cmd, &prefix)
	return cmd
}

func newTableCmd(root *rootOptions) *cobra.Command {
	var prefix string
	var maxRows int
	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print the rows of a built trie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, done, err := root.setup()
			if err != nil {
				return err
			}
			defer done()
			trie, _, err := loadTrie(log, cfg, prefix)
			if err != nil {
				return err
			}
			return trie.WriteTable(cmd.OutOrStdout(), maxRows)
		},
	}
	prefixFlag(cmd, &prefix)
	cmd.Flags().IntVarP(&maxRows, "rows", "n", 10, "rows to print, 0 for all")
	return cmd
}
