package configs

import (
	"bytes"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/storage"

	"github.com/BurntSushi/toml"
)

// SaveTOML encodes data as TOML and atomically replaces filePath with it.
// The file is private to the user since it may name the key file.
func SaveTOML(filePath string, data interface{}) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(data); err != nil {
		return fmt.Errorf("failed to encode %s: %w", filePath, err)
	}
	return storage.WriteAll(filePath, buf.Bytes())
}

// LoadTOML decodes the TOML file at filePath into data.
func LoadTOML(filePath string, data interface{}) error {
	if _, err := toml.DecodeFile(filePath, data); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	return nil
}
