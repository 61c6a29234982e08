package codec

import (
	"fmt"
	"sort"

	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
)

// Codec performs authenticated encryption of an opaque payload.
//
// Encrypt must use fresh randomness on every call. Decrypt must verify
// integrity before returning anything and must return no plaintext on
// failure.
type Codec interface {
	Encrypt(key keys.MasterKey, plaintext []byte) ([]byte, error)
	Decrypt(key keys.MasterKey, ciphertext []byte) ([]byte, error)
	Name() string
}

// Default is the codec used when none is configured.
const Default = "fernet"

var registry = map[string]func() Codec{
	"fernet":    func() Codec { return NewFernet() },
	"secretbox": func() Codec { return NewSecretbox() },
}

// ByName returns the registered Codec called name.
func ByName(name string) (Codec, error) {
	if name == "" {
		name = Default
	}
	newCodec, ok := registry[name]
	if !ok {
		return nil, lerrors.Validation("cipher", fmt.Sprintf("unknown cipher %q (available: %v)", name, Names()))
	}
	return newCodec(), nil
}

// Names lists the registered codec names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
