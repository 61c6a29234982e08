// Package errors provides the typed error taxonomy for lockbox.
//
// Every failure the credential pipeline can report belongs to one Kind.
// Callers branch on the kind with errors.Is against the package sentinels
// or with KindOf, never on message text.
//
// # Error Kinds
//
//   - KindKeyFileUnreadable: the master key file is missing or unreadable
//   - KindAuthentication: wrong key file, or the store was tampered with
//   - KindMalformedCiphertext: the store is not structurally valid ciphertext
//   - KindCorruptStore: decryption succeeded but the payload is not a mapping
//   - KindValidation: a required input was missing or invalid
//
// # Usage
//
// Return errors from internal packages:
//
//	if len(data) < minTokenLen {
//	    return nil, errors.MalformedCiphertext("token too short")
//	}
//
// Handle errors in the CLI layer:
//
//	store, err := vault.Load(path, key, c)
//	if errors.Is(err, lerrors.ErrAuthentication) {
//	    // wrong key file
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("opening store %s: %w", path, err)
package errors
