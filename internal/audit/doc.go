// Package audit records mutating lockbox operations.
//
// Each add or delete that changes the store appends one entry to a JSON
// Lines file, by default next to the store as <store>.audit.jsonl:
//
//	{"id":"…","ts":"2026-10-19T09:12:44.000000Z","user":"bob","op":"add","service":"email","account":"bob"}
//
// Entries name the service and account but never the secret.
//
// # Failure Handling
//
// Audit logging is best-effort. If the log cannot be written the operation
// still succeeds; losing a log line is preferable to refusing to store a
// credential.
package audit
