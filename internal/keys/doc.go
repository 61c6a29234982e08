// Package keys derives the lockbox master key from a key file.
//
// A key file is any file; only its bytes matter. The default derivation
// hashes the whole file with SHA-256 and encodes the digest as URL-safe
// base64, which is the Fernet key format. Argon2id is available as a
// slower, stretched alternative behind the same Deriver interface.
//
// Derivation is deterministic: byte-identical key files always produce the
// same MasterKey, and any change to the file changes the key.
package keys
