package columns

import (
	"fmt"
	"io"
	"slices"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
	"github.com/JohnLonginotto/ACGTrie/label"
)

const ManifestVersion = 1

// Manifest describes one persisted trie.
type Manifest struct {
	Version  uint16           `cbor:"1,keyasint"`
	BuildID  []byte           `cbor:"2,keyasint"`
	Rows     uint64           `cbor:"3,keyasint"`
	MaxLabel uint8            `cbor:"4,keyasint"`
	Mode     string           `cbor:"5,keyasint"`
	Checksum acgtrie.Checksum `cbor:"6,keyasint"`
	Columns  map[string]uint8 `cbor:"7,keyasint"`
	Formats  []string         `cbor:"8,keyasint"`
}

// Checksummer is the part of a trie a manifest is made from and checked
// against.
type Checksummer interface {
	Checksum() acgtrie.Checksum
}

// NewManifest describes src, built with mode, as written in formats.
func NewManifest(src Checksummer, id uuid.UUID, mode acgtrie.Mode, formats ...string) (Manifest, error) {
	for _, f := range formats {
		if f != FormatColumns && f != FormatRows {
			return Manifest{}, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
		}
	}
	c := src.Checksum()
	m := Manifest{
		Version:  ManifestVersion,
		BuildID:  id[:],
		Rows:     c.Rows,
		MaxLabel: label.MaxLen,
		Mode:     mode.String(),
		Checksum: c,
		Formats:  slices.Clone(formats),
	}
	if slices.Contains(formats, FormatColumns) {
		m.Columns = make(map[string]uint8, len(Widths))
		for name, w := range Widths {
			m.Columns[name] = uint8(w)
		}
	}
	return m, nil
}

// ID returns the build id.
func (m Manifest) ID() (uuid.UUID, error) {
	return uuid.FromBytes(m.BuildID)
}

// MarshalBinary encodes m with deterministic CBOR.
func (m Manifest) MarshalBinary() ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	return em.Marshal(m)
}

func (m *Manifest) UnmarshalBinary(b []byte) error {
	if err := cbor.Unmarshal(b, m); err != nil {
		return err
	}
	if m.Version != ManifestVersion || m.MaxLabel != label.MaxLen {
		return fmt.Errorf("%w: version %d, max label %d", ErrManifestFormat, m.Version, m.MaxLabel)
	}
	for name, w := range m.Columns {
		if Widths[name] != int(w) {
			return fmt.Errorf("%w: column %s width %d", ErrManifestFormat, name, w)
		}
	}
	return nil
}

// Has reports whether format was written.
func (m Manifest) Has(format string) bool {
	return slices.Contains(m.Formats, format)
}

// VerifyManifest checks that src holds the rows m describes. The allocated
// byte count is not compared since it depends on the bucket size.
func VerifyManifest(m Manifest, src Checksummer) error {
	got := src.Checksum()
	want := m.Checksum
	if got.Rows != m.Rows {
		return fmt.Errorf("%w: %d rows, manifest has %d", ErrManifest, got.Rows, m.Rows)
	}
	got.Allocated, want.Allocated = 0, 0
	if got != want {
		return fmt.Errorf("%w: %s, manifest has %s", ErrManifest, got, want)
	}
	return nil
}

// WriteManifestFile writes m under prefix and returns the path.
func WriteManifestFile(prefix string, m Manifest) (string, error) {
	b, err := m.MarshalBinary()
	if err != nil {
		return "", err
	}
	path := ManifestPath(prefix)
	if err := writeFile(path, func(w io.Writer) error {
		_, err := w.Write(b)
		return err
	}); err != nil {
		return "", err
	}
	return path, nil
}

// ReadManifest reads the manifest under prefix.
func ReadManifest(opener Opener, prefix string) (Manifest, error) {
	b, err := readAll(opener, ManifestPath(prefix))
	if err != nil {
		return Manifest{}, err
	}
	var m Manifest
	if err := m.UnmarshalBinary(b); err != nil {
		return Manifest{}, err
	}
	return m, nil
}
