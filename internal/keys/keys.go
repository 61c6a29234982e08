package keys

import (
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"sort"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"golang.org/x/crypto/argon2"
)

// KeySize is the raw length of every MasterKey in bytes.
const KeySize = 32

// MasterKey is a symmetric key in its URL-safe base64 form.
type MasterKey string

// Bytes decodes the key into its raw KeySize bytes.
func (k MasterKey) Bytes() ([]byte, error) {
	raw, err := base64.URLEncoding.DecodeString(string(k))
	if err != nil {
		return nil, lerrors.Validation("master key", "not url-safe base64")
	}
	if len(raw) != KeySize {
		return nil, lerrors.Validation("master key", fmt.Sprintf("expected %d bytes, got %d", KeySize, len(raw)))
	}
	return raw, nil
}

// Encode wraps raw key material as a MasterKey.
func Encode(raw []byte) MasterKey {
	return MasterKey(base64.URLEncoding.EncodeToString(raw))
}

// Deriver turns key file contents into a MasterKey. Implementations must be
// deterministic.
type Deriver interface {
	Derive(fileBytes []byte) (MasterKey, error)
	Name() string
}

// SHA256Deriver hashes the key file with SHA-256.
type SHA256Deriver struct{}

func (SHA256Deriver) Derive(fileBytes []byte) (MasterKey, error) {
	sum := sha256.Sum256(fileBytes)
	return Encode(sum[:]), nil
}

func (SHA256Deriver) Name() string { return "sha256" }

// argon2Salt is fixed so that the same key file always derives the same key.
var argon2Salt = []byte("lockbox/argon2id/v1")

// Argon2Deriver stretches the key file with Argon2id.
type Argon2Deriver struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// DefaultArgon2 returns the parameters used for the "argon2id" name.
func DefaultArgon2() Argon2Deriver {
	return Argon2Deriver{Time: 3, Memory: 64 * 1024, Threads: 4}
}

func (d Argon2Deriver) Derive(fileBytes []byte) (MasterKey, error) {
	if d.Time == 0 || d.Memory == 0 || d.Threads == 0 {
		return "", lerrors.Validation("argon2id parameters", "time, memory and threads must be non-zero")
	}
	return Encode(argon2.IDKey(fileBytes, argon2Salt, d.Time, d.Memory, d.Threads, KeySize)), nil
}

func (Argon2Deriver) Name() string { return "argon2id" }

// Default is the derivation used when none is configured.
const Default = "sha256"

var registry = map[string]func() Deriver{
	"sha256":   func() Deriver { return SHA256Deriver{} },
	"argon2id": func() Deriver { return DefaultArgon2() },
}

// ByName returns the registered Deriver called name.
func ByName(name string) (Deriver, error) {
	if name == "" {
		name = Default
	}
	newDeriver, ok := registry[name]
	if !ok {
		return nil, lerrors.Validation("kdf", fmt.Sprintf("unknown key derivation %q (available: %v)", name, Names()))
	}
	return newDeriver(), nil
}

// Names lists the registered derivation names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DeriveFile reads the key file at path and derives a MasterKey from its
// full contents.
func DeriveFile(path string, d Deriver) (MasterKey, error) {
	if path == "" {
		return "", lerrors.KeyFileUnreadable(path, errors.New("no key file path given"))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", lerrors.KeyFileUnreadable(path, err)
	}
	return d.Derive(data)
}
