package rop

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome holds either a success payload of type T or a failure Status.
// The zero value is a failure carrying Unknown.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	status    Status
}

func Succeed[T any](v T) Outcome[T] {
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		status:    Valid,
	}
}

// Fail builds a failure carrying Invalid(msg).
func Fail[T any](msg string) Outcome[T] {
	return FailStatus[T](Invalid(msg))
}

// FailStatus builds a failure from st. A Valid st is a programming error and
// is recorded as Unknown so that the success/status invariant holds.
func FailStatus[T any](st Status) Outcome[T] {
	if st.IsValid() {
		st = Unknown
	}
	return Outcome[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		status:    st,
	}
}

// FailErr builds a failure from err; see FromError.
func FailErr[T any](err error) Outcome[T] {
	if err == nil {
		return FailStatus[T](Unknown)
	}
	return FailStatus[T](FromError(err))
}

// FailFrom re-types a failure, keeping its status, id and creation time.
// Passing a success is a programming error and yields an Unknown failure.
func FailFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	st := from.status
	if st.IsValid() {
		st = Unknown
	}
	return Outcome[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		status:    st,
	}
}

func (o Outcome[T]) IsSuccess() bool {
	return o.status.IsValid()
}

func (o Outcome[T]) IsFailure() bool {
	return !o.status.IsValid()
}

// Status returns Valid on success, the failure status otherwise.
func (o Outcome[T]) Status() Status {
	return o.status
}

// Err returns nil on success and the status as an error otherwise.
func (o Outcome[T]) Err() error {
	return o.status.Err()
}

// Value returns the payload. Reading a failure returns the zero T and an
// error matching ErrBadResultAccess.
func (o Outcome[T]) Value() (T, error) {
	if !o.status.IsValid() {
		var zero T
		return zero, &BadResultAccessError{Status: o.status}
	}
	return o.value, nil
}

// MustValue returns the payload and panics with *BadResultAccessError on failure.
func (o Outcome[T]) MustValue() T {
	if !o.status.IsValid() {
		panic(&BadResultAccessError{Status: o.status})
	}
	return o.value
}

// ValueOr returns the payload or def on failure.
func (o Outcome[T]) ValueOr(def T) T {
	if !o.status.IsValid() {
		return def
	}
	return o.value
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}

// CreatedAt time creation (UTC)
func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) String() string {
	if o.status.IsValid() {
		return fmt.Sprintf("Succeed(%v)", o.value)
	}
	return fmt.Sprintf("Fail(%s)", o.status.Message())
}

// Take moves the outcome out of o and leaves an Unknown failure behind.
func Take[T any](o *Outcome[T]) Outcome[T] {
	out := *o
	*o = Outcome[T]{}
	return out
}

// Failf is Fail with fmt.Sprintf formatting.
func Failf[T any](format string, args ...any) Outcome[T] {
	return FailStatus[T](Invalidf(format, args...))
}
