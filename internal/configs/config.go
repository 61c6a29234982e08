package configs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/PolarWolf314/lockbox/internal/codec"
	"github.com/PolarWolf314/lockbox/internal/keys"
)

// Defaults applied when neither flags, environment nor config set a value.
const (
	DefaultStorePath = "passwords.json"
	DefaultKDF       = keys.Default
	DefaultCipher    = codec.Default
)

type Config struct {
	Store StoreConfig `toml:"store"`
	Audit AuditConfig `toml:"audit"`
}

type StoreConfig struct {
	Path    string `toml:"path"`
	KeyFile string `toml:"key_file"`
	KDF     string `toml:"kdf"`
	Cipher  string `toml:"cipher"`
}

type AuditConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Path:   DefaultStorePath,
			KDF:    DefaultKDF,
			Cipher: DefaultCipher,
		},
		Audit: AuditConfig{
			Enabled: true,
		},
	}
}

// LoadConfig loads the config file at ConfigPath.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom(ConfigPath())
}

// LoadConfigFrom loads the config file at path. Keys missing from the file
// keep their default values; a missing file yields DefaultConfig.
func LoadConfigFrom(path string) (*Config, error) {
	config := DefaultConfig()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err := LoadTOML(path, config); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return config, nil
}

// SaveConfig saves the config to ConfigPath.
func SaveConfig(config *Config) error {
	return SaveConfigTo(ConfigPath(), config)
}

// SaveConfigTo saves the config to path.
func SaveConfigTo(path string, config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}
	if err := SaveTOML(path, config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

// Validate checks that the configured kdf and cipher exist.
func (c *Config) Validate() error {
	if c.Store.KDF != "" {
		if _, err := keys.ByName(c.Store.KDF); err != nil {
			return err
		}
	}
	if c.Store.Cipher != "" {
		if _, err := codec.ByName(c.Store.Cipher); err != nil {
			return err
		}
	}
	return nil
}
