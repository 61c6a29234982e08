// Package vault holds the lockbox credential mapping and its business
// rules.
//
// A Store maps service to account to secret. It is loaded once per process
// from a single encrypted file and every mutation re-encrypts and rewrites
// that file in full before returning:
//
//	store, err := vault.Load(path, key, codec.NewFernet())
//	if err != nil {
//	    return err
//	}
//	if err := store.Add("email", "bob", "pw123"); err != nil {
//	    return err
//	}
//	secret, ok := store.Get("email", "bob")
//
// A service never exists without accounts: deleting the last account
// removes the service as well.
//
// # Failure Policy
//
// Only a missing file and a zero-length file load as an empty store. A
// wrong key or tampered file returns ErrAuthentication, content that is not
// ciphertext returns ErrMalformedCiphertext, and a payload that decrypts
// but does not parse returns ErrCorruptStore. Load never falls back to an
// empty store in those cases, since the next save would destroy the data.
//
// There is no cross-process locking. Two invocations that mutate the same
// file concurrently race, and the last full rewrite wins.
package vault
