// Package codec provides authenticated encryption for the lockbox store.
//
// Two codecs are available behind the Codec interface:
//
//   - fernet: the Fernet token format (AES-128-CBC + HMAC-SHA256, base64url
//     text). Stores written by earlier Fernet-based tools decrypt unchanged.
//   - secretbox: NaCl secretbox with a random 24-byte nonce prepended to the
//     sealed box (binary).
//
// Both draw fresh randomness per call, so encrypting the same payload twice
// yields different bytes. Decrypt distinguishes structurally invalid input
// (ErrMalformedCiphertext) from a failed integrity check (ErrAuthentication)
// and never returns partial plaintext.
package codec
