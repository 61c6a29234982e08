package workflows

import (
	"context"
	"time"

	"github.com/PolarWolf314/lockbox/internal/configs"
	"github.com/PolarWolf314/lockbox/internal/storage"
)

// ListOptions configures the list workflow.
type ListOptions struct {
	Settings configs.Settings

	// Service restricts the listing to one service when set.
	Service string
}

// ServiceSummary names a service and its accounts.
type ServiceSummary struct {
	Name     string
	Accounts []string
}

// ListResult contains the store contents without secrets.
type ListResult struct {
	Services  []ServiceSummary
	Accounts  int
	StorePath string

	// WrittenAt is when the store was last saved, if the cipher records it.
	WrittenAt time.Time
}

type timestamped interface {
	Timestamp(ciphertext []byte) (time.Time, error)
}

// List summarizes the services and accounts in the store.
func List(ctx context.Context, opts ListOptions) (*ListResult, error) {
	store, c, err := openStore(ctx, opts.Settings)
	if err != nil {
		return nil, err
	}

	result := &ListResult{StorePath: store.Path()}
	for _, service := range store.Services() {
		if opts.Service != "" && service != opts.Service {
			continue
		}
		accounts := store.Accounts(service)
		result.Services = append(result.Services, ServiceSummary{Name: service, Accounts: accounts})
		result.Accounts += len(accounts)
	}

	if ts, ok := c.(timestamped); ok {
		if data, err := storage.ReadAll(store.Path()); err == nil && len(data) > 0 {
			if written, err := ts.Timestamp(data); err == nil {
				result.WrittenAt = written
			}
		}
	}

	return result, nil
}
