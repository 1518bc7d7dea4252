package columns

import (
	"fmt"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/rowstore"
)

// Load reads the manifest under prefix, rebuilds the trie from the column
// files, or the packed rows file when no columns were written, and checks it
// against the manifest.
func Load(opener Opener, prefix string, opts ...rowstore.Option) (*acgtrie.Trie, Manifest, error) {
	m, err := ReadManifest(opener, prefix)
	if err != nil {
		return nil, Manifest{}, fmt.Errorf("manifest: %w", err)
	}

	var rows []rowstore.Row
	switch {
	case m.Has(FormatColumns):
		rows, err = ReadColumns(opener, prefix)
	case m.Has(FormatRows):
		rows, err = ReadRows(opener, RowsPath(prefix))
	default:
		err = fmt.Errorf("%w: no layout recorded", ErrManifestFormat)
	}
	if err != nil {
		return nil, Manifest{}, err
	}

	trie, err := acgtrie.FromRows(rows, opts...)
	if err != nil {
		return nil, Manifest{}, err
	}
	if err := VerifyManifest(m, trie); err != nil {
		return nil, Manifest{}, err
	}
	return trie, m, nil
}
