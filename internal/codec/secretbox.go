package codec

import (
	"crypto/rand"
	"fmt"
	"io"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
	"golang.org/x/crypto/nacl/secretbox"
)

const secretboxNonceLen = 24

// Secretbox seals payloads with NaCl secretbox (XSalsa20-Poly1305). The
// random nonce is prepended to the box.
type Secretbox struct {
	// Rand supplies nonces. Defaults to crypto/rand.
	Rand io.Reader
}

// NewSecretbox returns a Secretbox codec using crypto/rand.
func NewSecretbox() *Secretbox {
	return &Secretbox{Rand: rand.Reader}
}

func (s *Secretbox) Name() string { return "secretbox" }

func (s *Secretbox) Encrypt(key keys.MasterKey, plaintext []byte) ([]byte, error) {
	k, err := secretboxKey(key)
	if err != nil {
		return nil, err
	}

	r := s.Rand
	if r == nil {
		r = rand.Reader
	}
	var nonce [secretboxNonceLen]byte
	if _, err := io.ReadFull(r, nonce[:]); err != nil {
		return nil, fmt.Errorf("failed to generate nonce: %w", err)
	}

	return secretbox.Seal(nonce[:], plaintext, &nonce, k), nil
}

func (s *Secretbox) Decrypt(key keys.MasterKey, ciphertext []byte) ([]byte, error) {
	k, err := secretboxKey(key)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) < secretboxNonceLen+secretbox.Overhead {
		return nil, lerrors.MalformedCiphertext(fmt.Sprintf("sealed box too short: %d bytes", len(ciphertext)))
	}

	var nonce [secretboxNonceLen]byte
	copy(nonce[:], ciphertext[:secretboxNonceLen])

	plaintext, ok := secretbox.Open(nil, ciphertext[secretboxNonceLen:], &nonce, k)
	if !ok {
		return nil, lerrors.Authentication(nil)
	}
	return plaintext, nil
}

func secretboxKey(key keys.MasterKey) (*[keys.KeySize]byte, error) {
	raw, err := key.Bytes()
	if err != nil {
		return nil, err
	}
	var k [keys.KeySize]byte
	copy(k[:], raw)
	return &k, nil
}
