package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/codec"
	"github.com/PolarWolf314/lockbox/internal/configs"
	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/keys"
	"github.com/PolarWolf314/lockbox/internal/utils"
	"github.com/PolarWolf314/lockbox/internal/vault"
)

// openStore derives the master key and loads the store described by s.
func openStore(ctx context.Context, s configs.Settings) (*vault.Store, codec.Codec, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if s.KeyFile == "" {
		return nil, nil, lerrors.Validation("key file", "no key file given (use --key-file or set store.key_file)")
	}

	keyFile, err := utils.ExpandHome(s.KeyFile)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding key file path: %w", err)
	}
	storePath, err := utils.ExpandHome(s.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("expanding store path: %w", err)
	}

	deriver, err := keys.ByName(s.KDF)
	if err != nil {
		return nil, nil, err
	}
	c, err := codec.ByName(s.Cipher)
	if err != nil {
		return nil, nil, err
	}

	key, err := keys.DeriveFile(keyFile, deriver)
	if err != nil {
		return nil, nil, err
	}

	store, err := vault.Load(storePath, key, c)
	if err != nil {
		return nil, nil, fmt.Errorf("opening store %s: %w", storePath, err)
	}
	return store, c, nil
}

// requireEntry validates the service and account names.
func requireEntry(service, account string) error {
	if service == "" {
		return lerrors.Validation("service", "must not be empty")
	}
	if account == "" {
		return lerrors.Validation("account", "must not be empty")
	}
	return nil
}

// auditPath returns the expanded audit log path, or "" when auditing is off.
func auditPath(s configs.Settings) string {
	if !s.AuditEnabled {
		return ""
	}
	path, err := utils.ExpandHome(s.AuditPath)
	if err != nil {
		return s.AuditPath
	}
	return path
}
