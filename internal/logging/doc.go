// Package logger provides leveled logging for lockbox CLI commands.
//
// # Verbosity Levels
//
//   - --verbose: shows info and warning messages
//   - --debug: shows all messages including debug and error details
//
// Without flags only WarnfAlways output is shown; user-facing results are
// printed by the commands themselves.
//
// Secrets are never passed to the logger.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Loaded %d accounts", n)
package logger
