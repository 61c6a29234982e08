package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
)

// Test vector published with the Fernet token format.
const (
	specSecret = keys.MasterKey("cw_0x689RpI-jtRR7oE8h_eQsKImvJapLeSbXpwF4e4=")
	specToken  = "gAAAAAAdwJ6wAAECAwQFBgcICQoLDA0ODy021cpGVWKZ_eEwCGM4BLLF_5CV9dOPmrhuVUPgJobwOz7JcbmrR64jVmpU4IwqDA=="
)

func allCodecs() []Codec {
	return []Codec{NewFernet(), NewSecretbox()}
}

func mustDerive(t *testing.T, content string) keys.MasterKey {
	t.Helper()
	key, err := keys.SHA256Deriver{}.Derive([]byte(content))
	if err != nil {
		t.Fatalf("Failed to derive key: %v", err)
	}
	return key
}

func TestFernet_DecryptsSpecVector(t *testing.T) {
	plaintext, err := NewFernet().Decrypt(specSecret, []byte(specToken))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if string(plaintext) != "hello" {
		t.Errorf("Expected 'hello', got %q", plaintext)
	}
}

func TestFernet_EncryptMatchesSpecVector(t *testing.T) {
	iv := make([]byte, 16)
	for i := range iv {
		iv[i] = byte(i)
	}
	f := &Fernet{
		Rand: bytes.NewReader(iv),
		Now:  func() time.Time { return time.Date(1985, 10, 26, 1, 20, 0, 0, time.FixedZone("PDT", -7*3600)) },
	}

	token, err := f.Encrypt(specSecret, []byte("hello"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	if string(token) != specToken {
		t.Errorf("Expected %s, got %s", specToken, token)
	}
}

func TestFernet_TimestampReadsHeader(t *testing.T) {
	ts, err := NewFernet().Timestamp([]byte(specToken))
	if err != nil {
		t.Fatalf("Timestamp failed: %v", err)
	}
	want := time.Date(1985, 10, 26, 8, 20, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Errorf("Expected %v, got %v", want, ts)
	}

	if _, err := NewFernet().Timestamp([]byte("junk")); !errors.Is(err, lerrors.ErrMalformedCiphertext) {
		t.Errorf("Expected ErrMalformedCiphertext, got: %v", err)
	}
}

func TestFernet_AcceptsTrailingNewline(t *testing.T) {
	plaintext, err := NewFernet().Decrypt(specSecret, []byte(specToken+"\n"))
	if err != nil {
		t.Fatalf("Decrypt failed: %v", err)
	}
	if string(plaintext) != "hello" {
		t.Errorf("Expected 'hello', got %q", plaintext)
	}
}

func TestCodecs_RoundTripIsNonDeterministic(t *testing.T) {
	key := mustDerive(t, "hello")
	payloads := [][]byte{
		[]byte(`{"email":{"bob":"pw123"}}`),
		{},
		bytes.Repeat([]byte("x"), 16),
		bytes.Repeat([]byte{0x00, 0xff}, 1000),
	}

	for _, c := range allCodecs() {
		for _, p := range payloads {
			first, err := c.Encrypt(key, p)
			if err != nil {
				t.Fatalf("%s: Encrypt failed: %v", c.Name(), err)
			}
			second, err := c.Encrypt(key, p)
			if err != nil {
				t.Fatalf("%s: Encrypt failed: %v", c.Name(), err)
			}
			if bytes.Equal(first, second) {
				t.Errorf("%s: Expected two encryptions to differ", c.Name())
			}

			for _, ct := range [][]byte{first, second} {
				got, err := c.Decrypt(key, ct)
				if err != nil {
					t.Fatalf("%s: Decrypt failed: %v", c.Name(), err)
				}
				if !bytes.Equal(got, p) {
					t.Errorf("%s: Expected %q, got %q", c.Name(), p, got)
				}
			}
		}
	}
}

func TestCodecs_EncryptDoesNotMutateInput(t *testing.T) {
	key := mustDerive(t, "hello")
	for _, c := range allCodecs() {
		plaintext := []byte("do not touch")
		original := append([]byte(nil), plaintext...)
		if _, err := c.Encrypt(key, plaintext); err != nil {
			t.Fatalf("%s: Encrypt failed: %v", c.Name(), err)
		}
		if !bytes.Equal(plaintext, original) {
			t.Errorf("%s: plaintext was modified", c.Name())
		}
	}
}

func TestCodecs_WrongKeyFailsAuthentication(t *testing.T) {
	key1 := mustDerive(t, "hello")
	key2 := mustDerive(t, "goodbye")

	for _, c := range allCodecs() {
		ct, err := c.Encrypt(key1, []byte("secret payload"))
		if err != nil {
			t.Fatalf("%s: Encrypt failed: %v", c.Name(), err)
		}
		plaintext, err := c.Decrypt(key2, ct)
		if !errors.Is(err, lerrors.ErrAuthentication) {
			t.Errorf("%s: Expected ErrAuthentication, got: %v", c.Name(), err)
		}
		if plaintext != nil {
			t.Errorf("%s: Expected no plaintext on failure, got %q", c.Name(), plaintext)
		}
	}
}

func TestFernet_TamperedTokenFailsAuthentication(t *testing.T) {
	key := mustDerive(t, "hello")
	f := NewFernet()
	ct, err := f.Encrypt(key, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	raw, _ := base64.URLEncoding.DecodeString(string(ct))

	// Flip one bit in every position after the version byte.
	for i := 1; i < len(raw); i++ {
		tampered := append([]byte(nil), raw...)
		tampered[i] ^= 0x01
		_, err := f.Decrypt(key, []byte(base64.URLEncoding.EncodeToString(tampered)))
		if !errors.Is(err, lerrors.ErrAuthentication) {
			t.Fatalf("Byte %d: expected ErrAuthentication, got: %v", i, err)
		}
	}
}

func TestSecretbox_TamperedBoxFailsAuthentication(t *testing.T) {
	key := mustDerive(t, "hello")
	s := NewSecretbox()
	ct, err := s.Encrypt(key, []byte("secret payload"))
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	for i := range ct {
		tampered := append([]byte(nil), ct...)
		tampered[i] ^= 0x80
		if _, err := s.Decrypt(key, tampered); !errors.Is(err, lerrors.ErrAuthentication) {
			t.Fatalf("Byte %d: expected ErrAuthentication, got: %v", i, err)
		}
	}
}

func TestFernet_MalformedInput(t *testing.T) {
	key := mustDerive(t, "hello")
	raw, _ := base64.URLEncoding.DecodeString(specToken)

	wrongVersion := append([]byte(nil), raw...)
	wrongVersion[0] = 0x81

	tests := []struct {
		name  string
		input []byte
	}{
		{"not base64", []byte("this is *not* base64")},
		{"too short", []byte(base64.URLEncoding.EncodeToString(raw[:40]))},
		{"wrong version", []byte(base64.URLEncoding.EncodeToString(wrongVersion))},
		{"partial block", []byte(base64.URLEncoding.EncodeToString(append(raw[:len(raw)-32:len(raw)-32], append([]byte{1, 2, 3}, raw[len(raw)-32:]...)...)))},
		{"plain json", []byte(`{"email":{"bob":"pw123"}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFernet().Decrypt(key, tt.input)
			if !errors.Is(err, lerrors.ErrMalformedCiphertext) {
				t.Errorf("Expected ErrMalformedCiphertext, got: %v", err)
			}
		})
	}
}

func TestSecretbox_MalformedInput(t *testing.T) {
	key := mustDerive(t, "hello")
	_, err := NewSecretbox().Decrypt(key, make([]byte, 24+15))
	if !errors.Is(err, lerrors.ErrMalformedCiphertext) {
		t.Errorf("Expected ErrMalformedCiphertext, got: %v", err)
	}
}

func TestCodecs_RejectInvalidKey(t *testing.T) {
	for _, c := range allCodecs() {
		if _, err := c.Encrypt(keys.MasterKey("short"), []byte("x")); !errors.Is(err, lerrors.ErrValidation) {
			t.Errorf("%s: Expected ErrValidation, got: %v", c.Name(), err)
		}
	}
}

func TestByName(t *testing.T) {
	c, err := ByName("")
	if err != nil || c.Name() != Default {
		t.Errorf("Expected default codec %s, got %v (%v)", Default, c, err)
	}
	c, err = ByName("secretbox")
	if err != nil || c.Name() != "secretbox" {
		t.Errorf("Expected secretbox codec, got %v (%v)", c, err)
	}
	if _, err := ByName("rot13"); !errors.Is(err, lerrors.ErrValidation) {
		t.Errorf("Expected ErrValidation, got: %v", err)
	}
}
