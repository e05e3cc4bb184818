package rop

import "time"

type StatusProvider interface {
	// Status returns Valid on success, the failure status otherwise
	Status() Status
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}

// ValueProvider defines an interface for types that can return a payload
type ValueProvider[T any] interface {
	// Value returns the payload or an error matching ErrBadResultAccess
	Value() (T, error)
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithStatus is implemented by Outcome.
type WithStatus[T any] interface {
	StatusProvider
	ValueProvider[T]
	// Err returns the failure status as an error, nil on success
	Err() error
}

var _ WithStatus[int] = Outcome[int]{}
