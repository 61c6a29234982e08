// Package storage reads and writes the lockbox store file as a whole.
//
// The store is never patched in place. WriteAll writes a temporary file in
// the same directory, syncs it and renames it over the target, so the new
// blob fully supersedes the old one. ReadAll distinguishes a missing file
// (ErrNotExist) from an empty one (zero-length slice, nil error).
package storage
