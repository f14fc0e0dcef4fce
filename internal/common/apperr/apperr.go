// Package apperr defines the error kinds surfaced by the roster store.
//
// Every failure returned by the group and player collections is an *Error
// carrying one Kind, the operation that was attempted and a message that can
// be shown to a user as is. Callers branch on the kind with KindOf or IsKind.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure
type Kind string

const (
	// KindValidation means caller input failed a precondition. Storage is untouched.
	KindValidation Kind = "validation"

	// KindDuplicate means a uniqueness rule was violated. Storage is untouched.
	KindDuplicate Kind = "duplicate"

	// KindStorage means the underlying key-value store failed or held undecodable data.
	KindStorage Kind = "storage"
)

// Error is a classified failure of one operation
type Error struct {
	// Kind is the failure classification
	Kind Kind

	// Op names the attempted operation, e.g. "create group"
	Op string

	// Message is safe to show to a user
	Message string

	// Err is the underlying cause, if any
	Err error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Err
}

// Validation returns a KindValidation error for op
func Validation(op, message string) error {
	return &Error{Kind: KindValidation, Op: op, Message: message}
}

// Duplicate returns a KindDuplicate error for op
func Duplicate(op, message string) error {
	return &Error{Kind: KindDuplicate, Op: op, Message: message}
}

// Storage wraps a key-value store failure for op
func Storage(op string, err error) error {
	return &Error{Kind: KindStorage, Op: op, Message: "could not " + op, Err: err}
}

// KindOf returns the kind of the first *Error in err's chain, or "" when there is none
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given kind
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// UserMessage renders err for a notification: the attempted operation and the reason.
// Errors that are not classified get a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return fmt.Sprintf("%s: %s", appErr.Op, appErr.Message)
	}
	return "something went wrong, please try again"
}
