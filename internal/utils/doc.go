// Package utils provides shared utility functions for lockbox.
//
// # System Utilities
//
//   - GetUsername: returns the current system username
//   - ExpandHome: expands a leading ~ in paths
//
// # String Utilities
//
//   - MaskSecret: hides a secret for listings
//   - Pluralize: simple English plurals for output
//
// # I/O Utilities
//
//   - ReadAllFrom: reads a piped password
//   - TrimLineEnding: strips the newline a shell pipe appends
//
// # Terminal Utilities
//
//   - ReadPassword: prompts without echo
//   - IsTerminal: checks whether stdin is a terminal
package utils
