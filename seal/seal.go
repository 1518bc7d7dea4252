// Package seal signs the checksum of a built trie as a COSE Sign1 message so
// that persisted rows can be checked against a trusted key.
package seal

import (
	"crypto/ecdsa"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	dtcbor "github.com/datatrails/go-datatrails-common/cbor"
	dtcose "github.com/datatrails/go-datatrails-common/cose"
	"github.com/google/uuid"
	"github.com/veraison/go-cose"

	"github.com/JohnLonginotto/ACGTrie/acgtrie"
)

const Suffix = ".seal"

var (
	ErrKeyMismatch   = errors.New("seal: message was not signed by the trusted key")
	ErrVerifyFailed  = errors.New("seal: signature verification failed")
	ErrStateMismatch = errors.New("seal: sealed state does not match the trie")
)

// State is the signed commitment to a built trie.
type State struct {
	Rows     uint64    `cbor:"1,keyasint"`
	Count    uint64    `cbor:"2,keyasint"`
	Children [4]uint64 `cbor:"3,keyasint"`
	// Seq is the wrapping sum of the packed labels.
	Seq     uint64 `cbor:"4,keyasint"`
	BuildID []byte `cbor:"5,keyasint"`
	// Timestamp is the unix time in milliseconds when the state was taken.
	Timestamp int64  `cbor:"6,keyasint"`
	Mode      string `cbor:"7,keyasint"`
}

// Path returns the seal file name under prefix.
func Path(prefix string) string {
	return prefix + Suffix
}

// NewState takes the sealed fields from a checksum.
func NewState(c acgtrie.Checksum, buildID uuid.UUID, mode acgtrie.Mode, now time.Time) State {
	return State{
		Rows:      c.Rows,
		Count:     c.Count,
		Children:  c.Children(),
		Seq:       c.Seq,
		BuildID:   buildID[:],
		Timestamp: now.UnixMilli(),
		Mode:      mode.String(),
	}
}

// Check compares the sealed sums with c.
func (s State) Check(c acgtrie.Checksum) error {
	if s.Rows != c.Rows || s.Count != c.Count || s.Children != c.Children() || s.Seq != c.Seq {
		return fmt.Errorf("%w: sealed %d rows count %d, trie %s", ErrStateMismatch, s.Rows, s.Count, c)
	}
	return nil
}

// Sealer signs trie states on behalf of an issuer.
type Sealer struct {
	issuer    string
	cborCodec dtcbor.CBORCodec
}

func NewSealer(issuer string, cborCodec dtcbor.CBORCodec) Sealer {
	return Sealer{
		issuer:    issuer,
		cborCodec: cborCodec,
	}
}

// NewCodec returns the deterministic codec used for sealed payloads.
func NewCodec() (dtcbor.CBORCodec, error) {
	codec, err := dtcbor.NewCBORCodec(
		dtcbor.NewDeterministicEncOpts(),
		dtcbor.NewDeterministicDecOpts(), // unsigned int decodes to uint64
	)
	if err != nil {
		return dtcbor.CBORCodec{}, err
	}
	return codec, nil
}

// Sign1 signs state. The public key travels in the CWT confirmation claim of
// the protected header, so verifiers that do not hold a trusted key can still
// check integrity.
func (s Sealer) Sign1(coseSigner cose.Signer, keyIdentifier string, publicKey *ecdsa.PublicKey, subject string, state State) ([]byte, error) {
	payload, err := s.cborCodec.MarshalCBOR(state)
	if err != nil {
		return nil, err
	}

	msg := cose.Sign1Message{
		Headers: cose.Headers{
			Protected: cose.ProtectedHeader{
				dtcose.HeaderLabelCWTClaims: dtcose.NewCNFClaim(
					s.issuer, subject, keyIdentifier, coseSigner.Algorithm(), *publicKey),
			},
		},
		Payload: payload,
	}
	if err := msg.Sign(rand.Reader, nil, coseSigner); err != nil {
		return nil, err
	}
	return msg.MarshalCBOR()
}

func decOptions() []dtcose.SignOption {
	return []dtcose.SignOption{dtcose.WithDecOptions(dtcbor.NewDeterministicDecOpts())}
}

// Decode returns the message and its state without checking the signature.
func Decode(codec dtcbor.CBORCodec, msg []byte) (*dtcose.CoseSign1Message, State, error) {
	signed, err := dtcose.NewCoseSign1MessageFromCBOR(msg, decOptions()...)
	if err != nil {
		return nil, State{}, err
	}
	var state State
	if err := codec.UnmarshalInto(signed.Payload, &state); err != nil {
		return nil, State{}, err
	}
	return signed, state, nil
}

// Verify checks the signature of msg with the key carried in the message and
// returns the sealed state. When trusted is not nil the carried key must
// equal it.
func Verify(codec dtcbor.CBORCodec, msg []byte, trusted *ecdsa.PublicKey) (State, error) {
	signed, state, err := Decode(codec, msg)
	if err != nil {
		return State{}, err
	}

	provider := dtcose.NewCWTPublicKeyProvider(signed)
	if trusted != nil {
		remotePub, _, err := provider.PublicKey()
		if err != nil {
			return State{}, err
		}
		if !trusted.Equal(remotePub) {
			return State{}, ErrKeyMismatch
		}
	}
	if err := signed.VerifyWithProvider(provider, nil); err != nil {
		return State{}, fmt.Errorf("%w: %v", ErrVerifyFailed, err)
	}
	return state, nil
}
