package domain

import (
	"github.com/pkg/errors"
)

// Kind classifies a failure. Kinds are comparable sentinels, so
// errors.Is(err, ErrKey) matches any *Error carrying that kind.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	// ErrIO is returned when an input or key source cannot be read or written.
	ErrIO Kind = "io error"
	// ErrKey is returned when key material is too short or malformed.
	ErrKey Kind = "invalid key"
	// ErrEncoding is returned for invalid base64 or non UTF-8 plaintext.
	ErrEncoding Kind = "invalid encoding"
	// ErrVerification is returned when signature bytes are structurally invalid
	// or a token is rejected.
	ErrVerification Kind = "invalid signature"
	// ErrCrypto is returned when an AEAD tag does not verify.
	ErrCrypto Kind = "decryption failed"
	// ErrConfig is returned for unknown format tokens and bad settings.
	ErrConfig Kind = "invalid configuration"
)

// Error tags an underlying cause with a Kind.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Kind.Error() + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Err }

// Is implements errors.Is for Kind matching.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Wrap tags err with kind. A nil err yields nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Wrapf tags err with kind and adds a message. A nil err yields nil.
func Wrapf(kind Kind, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: errors.Wrapf(err, format, args...)}
}

// Errorf returns a new error of the given kind.
func Errorf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: errors.Errorf(format, args...)}
}
