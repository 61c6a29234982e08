// Package workflows provides high-level orchestration for lockbox commands.
//
// Workflows coordinate key derivation, the encrypted store and the audit
// log to implement complete user-facing operations, independent of CLI
// concerns like flag parsing, spinners and output formatting.
//
// # Design Philosophy
//
// The cmd/ package should be a thin layer that:
//   - Parses command-line flags and arguments
//   - Calls the appropriate workflow function
//   - Formats the result for display
//
// Workflows handle everything else:
//   - Validating required inputs
//   - Deriving the master key from the key file
//   - Loading, mutating and saving the store
//   - Recording audit trail entries
//
// # Available Workflows
//
//   - Add: stores or replaces a secret
//   - Get: looks up a secret
//   - Delete: removes a secret, and its service once empty
//   - List: summarizes services and accounts without revealing secrets
//   - Suggest: proposes a random password
//   - Log: reads the audit trail
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package so the CLI
// layer can branch on the failure kind:
//
//	result, err := workflows.Get(ctx, opts)
//	if errors.Is(err, lerrors.ErrAuthentication) {
//	    // wrong key file
//	}
//
// # Context Usage
//
// All workflow functions accept a context.Context as their first
// parameter. It is checked before the store is opened.
package workflows
