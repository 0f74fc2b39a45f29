// Package secretbox seals short credentials (POS passwords and API keys)
// before they are written to the database.
package secretbox

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/nacl/secretbox"
)

const (
	keySize   = 32
	nonceSize = 24
)

var (
	ErrEmptyKey      = errors.New("secrets key is empty")
	ErrCannotDecrypt = errors.New("sealed value cannot be opened with this key")
)

type Sealer struct {
	key [keySize]byte
}

// New derives the box key from an arbitrary passphrase.
func New(passphrase string) (*Sealer, error) {
	if passphrase == "" {
		return nil, ErrEmptyKey
	}

	return &Sealer{key: sha256.Sum256([]byte(passphrase))}, nil
}

// Seal returns base64(nonce || box). An empty plaintext stays empty.
func (s *Sealer) Seal(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	var nonce [nonceSize]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return "", fmt.Errorf("rand.Read -> %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &s.key)

	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Sealer) Open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(sealed)
	if err != nil {
		return "", fmt.Errorf("base64.DecodeString -> %w", err)
	}
	if len(raw) < nonceSize+secretbox.Overhead {
		return "", ErrCannotDecrypt
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &s.key)
	if !ok {
		return "", ErrCannotDecrypt
	}

	return string(plain), nil
}
