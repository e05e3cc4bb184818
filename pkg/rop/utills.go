package rop

import (
	"context"
	"errors"
	"reflect"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Cancelled converts a context error into an Invalid status prefixed with "cancelled".
func Cancelled(err error) Status {
	if err == nil {
		err = context.Canceled
	}
	st := FromError(err)
	st.message = "cancelled: " + st.message
	return st
}
