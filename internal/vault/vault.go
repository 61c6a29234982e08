package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/PolarWolf314/lockbox/internal/codec"
	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
	"github.com/PolarWolf314/lockbox/internal/storage"
)

// Entries maps service to account to secret.
type Entries map[string]map[string]string

// Store is the decrypted credential mapping for one store file. It is not
// safe for concurrent use.
type Store struct {
	path    string
	key     keys.MasterKey
	codec   codec.Codec
	entries Entries
}

// Load opens the store at path. A missing or zero-length file yields an
// empty store. Anything else must decrypt under key and parse as a
// credential mapping; failures are returned and never replaced by an
// empty store.
func Load(path string, key keys.MasterKey, c codec.Codec) (*Store, error) {
	s := &Store{path: path, key: key, codec: c, entries: Entries{}}

	data, err := storage.ReadAll(path)
	if errors.Is(err, storage.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return s, nil
	}

	plaintext, err := c.Decrypt(key, data)
	if err != nil {
		return nil, err
	}

	entries, err := decode(plaintext)
	if err != nil {
		return nil, lerrors.CorruptStore(path, err)
	}
	s.entries = entries
	return s, nil
}

// Path returns the store file location.
func (s *Store) Path() string {
	return s.path
}

// Add sets the secret for account under service, creating the service if
// needed, then saves the store. All three values must be valid UTF-8 since
// the store is serialized as JSON. If the save fails the mapping is left as
// it was.
func (s *Store) Add(service, account, secret string) error {
	for _, v := range []struct{ field, value string }{
		{"service", service},
		{"account", account},
		{"secret", secret},
	} {
		if !utf8.ValidString(v.value) {
			return lerrors.Validation(v.field, "must be valid UTF-8")
		}
	}

	accounts, ok := s.entries[service]
	if !ok {
		accounts = make(map[string]string)
		s.entries[service] = accounts
	}
	previous, existed := accounts[account]
	accounts[account] = secret

	if err := s.Save(); err != nil {
		switch {
		case existed:
			accounts[account] = previous
		case !ok:
			delete(s.entries, service)
		default:
			delete(accounts, account)
		}
		return err
	}
	return nil
}

// Get returns the secret for account under service.
func (s *Store) Get(service, account string) (string, bool) {
	secret, ok := s.entries[service][account]
	return secret, ok
}

// Delete removes account from service, dropping the service once it has no
// accounts left, then saves the store. Deleting a missing entry does
// nothing.
func (s *Store) Delete(service, account string) error {
	accounts, ok := s.entries[service]
	if !ok {
		return nil
	}
	if _, ok := accounts[account]; !ok {
		return nil
	}

	secret := accounts[account]
	delete(accounts, account)
	if len(accounts) == 0 {
		delete(s.entries, service)
	}

	if err := s.Save(); err != nil {
		accounts[account] = secret
		s.entries[service] = accounts
		return err
	}
	return nil
}

// Has reports whether service exists in the store.
func (s *Store) Has(service string) bool {
	_, ok := s.entries[service]
	return ok
}

// Save encrypts the whole mapping and atomically replaces the store file.
func (s *Store) Save() error {
	plaintext, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	ciphertext, err := s.codec.Encrypt(s.key, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt store: %w", err)
	}
	return storage.WriteAll(s.path, ciphertext)
}

// Services returns the service names in sorted order.
func (s *Store) Services() []string {
	services := make([]string, 0, len(s.entries))
	for service := range s.entries {
		services = append(services, service)
	}
	sort.Strings(services)
	return services
}

// Accounts returns the account names under service in sorted order.
func (s *Store) Accounts(service string) []string {
	accounts := make([]string, 0, len(s.entries[service]))
	for account := range s.entries[service] {
		accounts = append(accounts, account)
	}
	sort.Strings(accounts)
	return accounts
}

// Len returns the total number of accounts across all services.
func (s *Store) Len() int {
	n := 0
	for _, accounts := range s.entries {
		n += len(accounts)
	}
	return n
}

// Snapshot returns a deep copy of the mapping.
func (s *Store) Snapshot() Entries {
	out := make(Entries, len(s.entries))
	for service, accounts := range s.entries {
		copied := make(map[string]string, len(accounts))
		for account, secret := range accounts {
			copied[account] = secret
		}
		out[service] = copied
	}
	return out
}

func decode(plaintext []byte) (Entries, error) {
	var entries Entries
	if err := json.Unmarshal(plaintext, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, errors.New("store is not a JSON object")
	}
	for service, accounts := range entries {
		if len(accounts) == 0 {
			delete(entries, service)
		}
	}
	return entries, nil
}
