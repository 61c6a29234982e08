package workflows

import (
	"context"

	"github.com/PolarWolf314/lockbox/internal/passgen"
)

// SuggestOptions configures the suggest workflow.
type SuggestOptions struct {
	// Length defaults to passgen.DefaultLength when zero.
	Length int
}

// SuggestResult contains a suggested password.
type SuggestResult struct {
	Password string
}

// Suggest proposes a random password. It does not touch the store.
func Suggest(ctx context.Context, opts SuggestOptions) (*SuggestResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	length := opts.Length
	if length == 0 {
		length = passgen.DefaultLength
	}

	password, err := passgen.Suggest(length)
	if err != nil {
		return nil, err
	}
	return &SuggestResult{Password: password}, nil
}
