package seal

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/veraison/go-cose"
)

const (
	privateKeyBlock = "EC PRIVATE KEY"
	publicKeyBlock  = "PUBLIC KEY"
)

var ErrNoPEM = errors.New("seal: no PEM block of the expected type")

// GenerateKey returns a new P-256 key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	return ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
}

// NewSigner returns an ES256 signer for key.
func NewSigner(key *ecdsa.PrivateKey) (cose.Signer, error) {
	return cose.NewSigner(cose.AlgorithmES256, key)
}

// KeyID names pub by the hex of the first 8 bytes of the SHA-256 of its
// PKIX encoding.
func KeyID(pub *ecdsa.PublicKey) (string, error) {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(der)
	return hex.EncodeToString(sum[:8]), nil
}

func writePEM(path, blockType string, der []byte, perm os.FileMode) error {
	return os.WriteFile(path, pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der}), perm)
}

func readPEM(path, blockType string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	for {
		var block *pem.Block
		block, b = pem.Decode(b)
		if block == nil {
			return nil, fmt.Errorf("%w: %s in %s", ErrNoPEM, blockType, path)
		}
		if block.Type == blockType {
			return block.Bytes, nil
		}
	}
}

// WriteKeyFile stores key as a PEM encoded SEC 1 private key.
func WriteKeyFile(path string, key *ecdsa.PrivateKey) error {
	der, err := x509.MarshalECPrivateKey(key)
	if err != nil {
		return err
	}
	return writePEM(path, privateKeyBlock, der, 0o600)
}

func ReadKeyFile(path string) (*ecdsa.PrivateKey, error) {
	der, err := readPEM(path, privateKeyBlock)
	if err != nil {
		return nil, err
	}
	return x509.ParseECPrivateKey(der)
}

// WritePublicKeyFile stores pub as a PEM encoded PKIX public key.
func WritePublicKeyFile(path string, pub *ecdsa.PublicKey) error {
	der, err := x509.MarshalPKIXPublicKey(pub)
	if err != nil {
		return err
	}
	return writePEM(path, publicKeyBlock, der, 0o644)
}

func ReadPublicKeyFile(path string) (*ecdsa.PublicKey, error) {
	der, err := readPEM(path, publicKeyBlock)
	if err != nil {
		return nil, err
	}
	pub, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, err
	}
	ec, ok := pub.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: %s holds a %T", ErrNoPEM, path, pub)
	}
	return ec, nil
}
