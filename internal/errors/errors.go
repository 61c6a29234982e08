package errors

import (
	"errors"
	"fmt"
)

// Kind identifies a category of failure so callers can branch on it without
// inspecting error strings.
type Kind int

const (
	// KindUnknown is the zero value and never matches a sentinel.
	KindUnknown Kind = iota

	// KindKeyFileUnreadable indicates the master key file could not be opened or read.
	KindKeyFileUnreadable

	// KindAuthentication indicates ciphertext failed its integrity check.
	KindAuthentication

	// KindMalformedCiphertext indicates the stored blob is not structurally valid ciphertext.
	KindMalformedCiphertext

	// KindCorruptStore indicates decryption succeeded but the payload is not a credential mapping.
	KindCorruptStore

	// KindValidation indicates a required value was missing or invalid.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindKeyFileUnreadable:
		return "key file unreadable"
	case KindAuthentication:
		return "authentication failed"
	case KindMalformedCiphertext:
		return "malformed ciphertext"
	case KindCorruptStore:
		return "corrupt store"
	case KindValidation:
		return "validation failed"
	default:
		return "unknown error"
	}
}

// Sentinels for use with errors.Is. Any *Error of the matching kind
// satisfies errors.Is(err, ErrX).
var (
	// ErrKeyFileUnreadable indicates the master key file is missing or unreadable.
	ErrKeyFileUnreadable = errors.New("master key file is unreadable")

	// ErrAuthentication indicates the wrong key was used or the store was tampered with.
	ErrAuthentication = errors.New("integrity check failed: wrong key file or tampered store")

	// ErrMalformedCiphertext indicates the store content is not valid ciphertext.
	ErrMalformedCiphertext = errors.New("store content is not valid ciphertext")

	// ErrCorruptStore indicates the decrypted store could not be parsed.
	ErrCorruptStore = errors.New("decrypted store is not a valid credential mapping")

	// ErrValidation indicates invalid input.
	ErrValidation = errors.New("invalid input")
)

var sentinels = map[Kind]error{
	KindKeyFileUnreadable:   ErrKeyFileUnreadable,
	KindAuthentication:      ErrAuthentication,
	KindMalformedCiphertext: ErrMalformedCiphertext,
	KindCorruptStore:        ErrCorruptStore,
	KindValidation:          ErrValidation,
}

// Error is a categorized failure carrying optional context.
type Error struct {
	Kind Kind

	// Path is the file involved, if any.
	Path string

	// Field names the offending input for validation failures.
	Field string

	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if s, ok := sentinels[e.Kind]; ok {
		msg = s.Error()
	}
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Field)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// KindOf returns the Kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for kind, s := range sentinels {
		if errors.Is(err, s) {
			return kind
		}
	}
	return KindUnknown
}

// KeyFileUnreadable wraps a failure to read the master key file at path.
func KeyFileUnreadable(path string, err error) error {
	return &Error{Kind: KindKeyFileUnreadable, Path: path, Err: err}
}

// Authentication reports a failed integrity check.
func Authentication(err error) error {
	return &Error{Kind: KindAuthentication, Err: err}
}

// MalformedCiphertext reports structurally invalid ciphertext.
func MalformedCiphertext(reason string) error {
	return &Error{Kind: KindMalformedCiphertext, Err: errors.New(reason)}
}

// CorruptStore reports an unparsable decrypted store at path.
func CorruptStore(path string, err error) error {
	return &Error{Kind: KindCorruptStore, Path: path, Err: err}
}

// Validation reports a missing or invalid input named by field.
func Validation(field, reason string) error {
	e := &Error{Kind: KindValidation, Field: field}
	if reason != "" {
		e.Err = errors.New(reason)
	}
	return e
}
