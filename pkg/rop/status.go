package rop

import (
	"errors"
	"fmt"
)

type statusKind uint8

const (
	kindUnknown statusKind = iota
	kindValid
	kindInvalid
)

const (
	validMessage   = "valid"
	unknownMessage = "unknown"
	invalidMessage = "invalid"
)

// ErrUnknownStatus is the cause reported for a failure that was never assigned.
var ErrUnknownStatus = errors.New("rop: unknown status")

// Status marks an outcome as Valid, Invalid(message) or Unknown.
// The zero value is Unknown.
type Status struct {
	kind    statusKind
	message string
	cause   error
}

var (
	// Valid marks a successful outcome.
	Valid = Status{kind: kindValid, message: validMessage}
	// Unknown is the never-assigned / moved-out status.
	Unknown = Status{}
)

// Invalid builds a failure status carrying msg. An empty msg becomes "invalid".
func Invalid(msg string) Status {
	if msg == "" {
		msg = invalidMessage
	}
	return Status{kind: kindInvalid, message: msg}
}

// Invalidf is Invalid with fmt.Sprintf formatting.
func Invalidf(format string, args ...any) Status {
	return Invalid(fmt.Sprintf(format, args...))
}

// FromError converts err into an Invalid status keeping err as its cause.
// A nil err yields Valid.
func FromError(err error) Status {
	if err == nil {
		return Valid
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return Status{kind: kindInvalid, message: err.Error(), cause: err}
}

func (s Status) IsValid() bool {
	return s.kind == kindValid
}

func (s Status) IsUnknown() bool {
	return s.kind == kindUnknown
}

func (s Status) IsInvalid() bool {
	return s.kind == kindInvalid
}

// Message returns the human-readable payload of the status.
func (s Status) Message() string {
	switch s.kind {
	case kindValid:
		return validMessage
	case kindUnknown:
		return unknownMessage
	default:
		return s.message
	}
}

// Cause returns the error the status was built from, if any.
func (s Status) Cause() error {
	return s.cause
}

func (s Status) String() string {
	return s.Message()
}

// Equal reports whether both statuses have the same kind and message.
// Causes are not compared.
func (s Status) Equal(other Status) bool {
	return s.kind == other.kind && s.Message() == other.Message()
}

// Err returns nil for Valid, otherwise a *StatusError wrapping the status.
func (s Status) Err() error {
	if s.IsValid() {
		return nil
	}
	return &StatusError{Status: s}
}

// Hash returns a djb2-style hash of the status message.
func (s Status) Hash() uint64 {
	msg := s.Message()
	var h uint64
	for i := len(msg) - 1; i >= 0; i-- {
		h = (h << 5) + h + uint64(msg[i])
	}
	return h
}

// TakeStatus moves the status out of s and leaves Unknown in its place.
func TakeStatus(s *Status) Status {
	out := *s
	*s = Unknown
	return out
}

// StatusError adapts a failure Status to the error interface.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return e.Status.Message()
}

func (e *StatusError) Unwrap() error {
	if e.Status.cause != nil {
		return e.Status.cause
	}
	if e.Status.IsUnknown() {
		return ErrUnknownStatus
	}
	return nil
}
