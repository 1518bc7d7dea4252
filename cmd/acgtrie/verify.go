package main

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JohnLonginotto/ACGTrie/seal"
)

func newVerifyCmd(root *rootOptions) *cobra.Command {
	var prefix, pubKey string
	var requireSeal bool
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check a built trie against its manifest and seal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, done, err := root.setup()
			if err != nil {
				return err
			}
			defer done()

			// load checks the rows against the manifest
			trie, m, err := loadTrie(log, cfg, prefix)
			if err != nil {
				return err
			}
			if err := trie.Verify(); err != nil {
				return err
			}

			sealPath := seal.Path(prefixOr(prefix, cfg))
			msg, err := os.ReadFile(sealPath)
			switch {
			case errors.Is(err, os.ErrNotExist) && !requireSeal && pubKey == "":
				log.Infof("no seal at %s", sealPath)
			case err != nil:
				return err
			default:
				var trusted *ecdsa.PublicKey
				if pubKey != "" {
					if trusted, err = seal.ReadPublicKeyFile(pubKey); err != nil {
						return err
					}
				}
				codec, err := seal.NewCodec()
				if err != nil {
					return err
				}
				state, err := seal.Verify(codec, msg, trusted)
				if err != nil {
					return err
				}
				if err := state.Check(trie.Checksum()); err != nil {
					return err
				}
				if string(state.BuildID) != string(m.BuildID) {
					return fmt.Errorf("%w: seal build id does not match the manifest", seal.ErrStateMismatch)
				}
			}
			id, _ := m.ID()
			fmt.Fprintf(cmd.OutOrStdout(), "OK %s %d rows\n", id, trie.Len())
			return nil
		},
	}
	prefixFlag(cmd, &prefix)
	cmd.Flags().StringVar(&pubKey, "seal-pub", "", "PEM public key the seal must be signed with")
	cmd.Flags().BoolVar(&requireSeal, "require-seal", false, "fail when there is no seal")
	return cmd
}
