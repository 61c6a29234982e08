package workflows

import (
	"context"

	"github.com/PolarWolf314/lockbox/internal/audit"
	"github.com/PolarWolf314/lockbox/internal/configs"
)

// AddOptions configures the add workflow.
type AddOptions struct {
	Settings configs.Settings

	Service string
	Account string

	// Secret may be empty.
	Secret string
}

// AddResult contains the outcome of an add operation.
type AddResult struct {
	Service   string
	Account   string
	StorePath string

	// Overwrote is true when an existing secret was replaced.
	Overwrote bool
}

// Add stores the secret for (service, account), replacing any existing
// value, and rewrites the store file.
func Add(ctx context.Context, opts AddOptions) (*AddResult, error) {
	if err := requireEntry(opts.Service, opts.Account); err != nil {
		return nil, err
	}

	store, _, err := openStore(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}

	_, existed := store.Get(opts.Service, opts.Account)
	if err := store.Add(opts.Service, opts.Account, opts.Secret); err != nil {
		return nil, err
	}

	audit.Log(auditPath(opts.Settings), audit.Entry{
		Operation: "add",
		Service:   opts.Service,
		Account:   opts.Account,
		Overwrote: existed,
	})

	return &AddResult{
		Service:   opts.Service,
		Account:   opts.Account,
		StorePath: store.Path(),
		Overwrote: existed,
	}, nil
}
