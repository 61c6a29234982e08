// Package configs manages lockbox configuration.
//
// Configuration is stored in TOML format at
// <user config dir>/lockbox/config.toml, or wherever LOCKBOX_CONFIG points:
//
//	[store]
//	path = "passwords.json"
//	key_file = "/home/me/.lockbox.key"
//	kdf = "sha256"
//	cipher = "fernet"
//
//	[audit]
//	enabled = true
//	path = ""
//
// A missing file is not an error; DefaultConfig is used instead. Keys
// missing from an existing file keep their defaults.
//
// # Resolution
//
// Resolve produces the effective Settings for one invocation. For the store
// path and key file the precedence is: command-line flag, then environment
// (LOCKBOX_STORE, LOCKBOX_KEY_FILE), then config file, then default. The
// audit log defaults to the store path with an .audit.jsonl suffix.
//
// # Settings
//
// UserLockboxSettings is initialized at startup with the user config
// directory and the current username.
package configs
