package rop

import "errors"

// ErrBadResultAccess is matched by errors returned (or panicked) when the
// payload of a failed Outcome is read. It signals misuse, not a business failure.
var ErrBadResultAccess = errors.New("rop: bad result access")

// BadResultAccessError carries the status of the Outcome that was misread.
type BadResultAccessError struct {
	Status Status
}

func (e *BadResultAccessError) Error() string {
	return ErrBadResultAccess.Error() + ": outcome status is " + e.Status.Message()
}

func (e *BadResultAccessError) Unwrap() error {
	return ErrBadResultAccess
}
