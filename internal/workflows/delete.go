package workflows

import (
	"context"

	"github.com/PolarWolf314/lockbox/internal/audit"
	"github.com/PolarWolf314/lockbox/internal/configs"
)

// DeleteOptions configures the delete workflow.
type DeleteOptions struct {
	Settings configs.Settings

	Service string
	Account string
}

// DeleteResult contains the outcome of a delete operation.
type DeleteResult struct {
	Service string
	Account string

	// Removed is false when there was nothing to delete.
	Removed bool

	// ServiceRemoved is true when the deleted account was the service's last.
	ServiceRemoved bool
}

// Delete removes the secret for (service, account). Deleting an entry that
// does not exist succeeds and leaves the store file untouched.
func Delete(ctx context.Context, opts DeleteOptions) (*DeleteResult, error) {
	if err := requireEntry(opts.Service, opts.Account); err != nil {
		return nil, err
	}

	store, _, err := openStore(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}

	result := &DeleteResult{Service: opts.Service, Account: opts.Account}
	if _, ok := store.Get(opts.Service, opts.Account); !ok {
		return result, nil
	}

	if err := store.Delete(opts.Service, opts.Account); err != nil {
		return nil, err
	}
	result.Removed = true
	result.ServiceRemoved = !store.Has(opts.Service)

	audit.Log(auditPath(opts.Settings), audit.Entry{
		Operation:      "delete",
		Service:        opts.Service,
		Account:        opts.Account,
		ServiceRemoved: result.ServiceRemoved,
	})

	return result, nil
}
