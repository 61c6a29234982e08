package workflows

import (
	"context"

	"github.com/PolarWolf314/lockbox/internal/configs"
)

// GetOptions configures the get workflow.
type GetOptions struct {
	Settings configs.Settings

	Service string
	Account string
}

// GetResult contains the outcome of a lookup. A missing entry is not an
// error; Found is false.
type GetResult struct {
	Service string
	Account string
	Secret  string
	Found   bool
}

// Get looks up the secret for (service, account).
func Get(ctx context.Context, opts GetOptions) (*GetResult, error) {
	if err := requireEntry(opts.Service, opts.Account); err != nil {
		return nil, err
	}

	store, _, err := openStore(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}

	secret, found := store.Get(opts.Service, opts.Account)
	return &GetResult{
		Service: opts.Service,
		Account: opts.Account,
		Secret:  secret,
		Found:   found,
	}, nil
}
