// Package shardvaulterr provides the structured error taxonomy shared by
// every shardvault component: the field arithmetic, the threshold engine,
// the crypto envelope, the secret pipeline, the share packet format, and
// the text codecs all fail through the same *Error shape so a caller can
// switch on Kind once instead of learning one error style per package.
package shardvaulterr

import (
	"errors"
	"fmt"
	"sort"
)

// Kind identifies the category of failure. Values are stable across
// releases; callers should branch on Kind, not on Error() text.
type Kind string

// Error kinds, one per row of the taxonomy.
const (
	KindInvalidKAndN          Kind = "InvalidKAndN"
	KindInvalidInput          Kind = "InvalidInput"
	KindNotEnoughShares       Kind = "NotEnoughShares"
	KindInconsistentMetadata  Kind = "InconsistentMetadata"
	KindDuplicateX            Kind = "DuplicateX"
	KindInvalidX              Kind = "InvalidX"
	KindDivisionByZero        Kind = "DivisionByZero"
	KindInvalidCombinedLength Kind = "InvalidCombinedLength"
	KindIntegrityCheckFailed  Kind = "IntegrityCheckFailed"
	KindInvalidPacket         Kind = "InvalidPacket"
	KindEncoding              Kind = "Encoding"
	KindCrypto                Kind = "Crypto"
	KindEncryptFailed         Kind = "EncryptFailed"
	KindDecryptFailed         Kind = "DecryptFailed"
	KindPassphraseRequired    Kind = "PassphraseRequired"
	KindCryptoParamsMismatch  Kind = "CryptoParamsMismatch"
)

// Error is the structured error type returned by every shardvault package.
type Error struct {
	Kind    Kind              // Machine-readable category
	Message string            // Human-readable summary
	Details map[string]string // Additional context, e.g. {"have": "2", "need": "3"}
	Cause   error             // Underlying error, if any
}

func (e *Error) Error() string {
	msg := e.Message

	if len(e.Details) > 0 {
		keys := make([]string, 0, len(e.Details))
		for k := range e.Details {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			msg = fmt.Sprintf("%s (%s: %s)", msg, k, e.Details[k])
		}
	}

	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return msg
}

// Unwrap exposes the underlying cause to errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error with the same Kind, so
// errors.Is(err, shardvaulterr.New(KindEncoding, "")) works as a category test.
func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Kind == t.Kind
	}
	return false
}

// New creates an *Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates an *Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches kind/message to an underlying cause.
func Wrap(kind Kind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// WithDetails returns a copy of err with Details attached.
// If err is not an *Error, it is wrapped as KindInvalidInput.
func WithDetails(err error, details map[string]string) error {
	if err == nil {
		return nil
	}

	var se *Error
	if errors.As(err, &se) {
		return &Error{Kind: se.Kind, Message: se.Message, Details: details, Cause: se.Cause}
	}
	return &Error{Kind: KindInvalidInput, Message: err.Error(), Details: details, Cause: err}
}

// Is is a convenience re-export of errors.Is for callers that only import
// this package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is a convenience re-export of errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// OfKind reports whether err is (or wraps) an *Error of the given kind.
func OfKind(err error, kind Kind) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind == kind
	}
	return false
}
