package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/lockbox/internal/audit"
	"github.com/PolarWolf314/lockbox/internal/configs"
	lerrors "github.com/PolarWolf314/lockbox/internal/errors"
	"github.com/PolarWolf314/lockbox/internal/utils"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	Settings configs.Settings

	// Service and Account filter entries when set.
	Service string
	Account string

	// Limit keeps only the most recent entries when positive.
	Limit int
}

// LogResult contains audit entries, oldest first.
type LogResult struct {
	Entries []audit.Entry
	Path    string
}

// Log reads the audit trail. It does not need the key file.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !opts.Settings.AuditEnabled || opts.Settings.AuditPath == "" {
		return nil, lerrors.Validation("audit", "audit logging is disabled in the config")
	}

	path, err := utils.ExpandHome(opts.Settings.AuditPath)
	if err != nil {
		return nil, fmt.Errorf("expanding audit path: %w", err)
	}

	entries, err := audit.ReadEntries(path)
	if err != nil {
		return nil, fmt.Errorf("reading audit log %s: %w", path, err)
	}

	entries = audit.Filter(entries, opts.Service, opts.Account)
	if opts.Limit > 0 && len(entries) > opts.Limit {
		entries = entries[len(entries)-opts.Limit:]
	}

	return &LogResult{Entries: entries, Path: path}, nil
}
