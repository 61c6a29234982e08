package codec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"time"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
)

// Fernet token layout, all offsets in bytes of the decoded token.
const (
	fernetVersion  byte = 0x80
	fernetTSLen         = 8
	fernetIVLen         = aes.BlockSize
	fernetMACLen        = sha256.Size
	fernetHeadLen       = 1 + fernetTSLen + fernetIVLen
	fernetMinLen        = fernetHeadLen + aes.BlockSize + fernetMACLen
	fernetKeyHalf       = keys.KeySize / 2
)

// Fernet implements the Fernet token format: AES-128-CBC with PKCS#7
// padding, authenticated by HMAC-SHA256, base64url encoded. The first half
// of the key signs, the second half encrypts.
type Fernet struct {
	// Rand supplies IVs. Defaults to crypto/rand.
	Rand io.Reader

	// Now stamps tokens. Defaults to time.Now.
	Now func() time.Time
}

// NewFernet returns a Fernet codec using crypto/rand and the wall clock.
func NewFernet() *Fernet {
	return &Fernet{Rand: rand.Reader, Now: time.Now}
}

func (f *Fernet) Name() string { return "fernet" }

func (f *Fernet) Encrypt(key keys.MasterKey, plaintext []byte) ([]byte, error) {
	signKey, encKey, err := splitFernetKey(key)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create aes cipher: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	token := make([]byte, fernetHeadLen+len(padded), fernetHeadLen+len(padded)+fernetMACLen)
	token[0] = fernetVersion
	binary.BigEndian.PutUint64(token[1:1+fernetTSLen], uint64(f.now().Unix()))

	iv := token[1+fernetTSLen : fernetHeadLen]
	if _, err := io.ReadFull(f.rand(), iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(token[fernetHeadLen:], padded)

	mac := hmac.New(sha256.New, signKey)
	mac.Write(token)
	token = mac.Sum(token)

	out := make([]byte, base64.URLEncoding.EncodedLen(len(token)))
	base64.URLEncoding.Encode(out, token)
	return out, nil
}

func (f *Fernet) Decrypt(key keys.MasterKey, ciphertext []byte) ([]byte, error) {
	signKey, encKey, err := splitFernetKey(key)
	if err != nil {
		return nil, err
	}

	encoded := bytes.TrimSpace(ciphertext)
	token := make([]byte, base64.URLEncoding.DecodedLen(len(encoded)))
	n, err := base64.URLEncoding.Decode(token, encoded)
	if err != nil {
		return nil, lerrors.MalformedCiphertext("token is not url-safe base64")
	}
	token = token[:n]

	if len(token) < fernetMinLen {
		return nil, lerrors.MalformedCiphertext(fmt.Sprintf("token too short: %d bytes", len(token)))
	}
	if token[0] != fernetVersion {
		return nil, lerrors.MalformedCiphertext(fmt.Sprintf("unsupported token version 0x%02x", token[0]))
	}
	body := token[fernetHeadLen : len(token)-fernetMACLen]
	if len(body)%aes.BlockSize != 0 {
		return nil, lerrors.MalformedCiphertext("ciphertext is not a whole number of blocks")
	}

	mac := hmac.New(sha256.New, signKey)
	mac.Write(token[:len(token)-fernetMACLen])
	if !hmac.Equal(mac.Sum(nil), token[len(token)-fernetMACLen:]) {
		return nil, lerrors.Authentication(nil)
	}

	block, err := aes.NewCipher(encKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create aes cipher: %w", err)
	}
	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, token[1+fernetTSLen:fernetHeadLen]).CryptBlocks(plaintext, body)

	unpadded, ok := pkcs7Unpad(plaintext, aes.BlockSize)
	if !ok {
		return nil, lerrors.Authentication(errors.New("invalid padding"))
	}
	return unpadded, nil
}

// Timestamp returns the creation time recorded in a Fernet token without
// verifying it.
func (f *Fernet) Timestamp(ciphertext []byte) (time.Time, error) {
	token, err := base64.URLEncoding.DecodeString(string(bytes.TrimSpace(ciphertext)))
	if err != nil || len(token) < fernetMinLen || token[0] != fernetVersion {
		return time.Time{}, lerrors.MalformedCiphertext("not a fernet token")
	}
	ts := binary.BigEndian.Uint64(token[1 : 1+fernetTSLen])
	return time.Unix(int64(ts), 0).UTC(), nil
}

func (f *Fernet) rand() io.Reader {
	if f.Rand == nil {
		return rand.Reader
	}
	return f.Rand
}

func (f *Fernet) now() time.Time {
	if f.Now == nil {
		return time.Now()
	}
	return f.Now()
}

func splitFernetKey(key keys.MasterKey) (signKey, encKey []byte, err error) {
	raw, err := key.Bytes()
	if err != nil {
		return nil, nil, err
	}
	return raw[:fernetKeyHalf], raw[fernetKeyHalf:], nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+n)
	copy(out, data)
	for i := len(data); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, bool) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, false
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, false
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, false
		}
	}
	return data[:len(data)-n], true
}
