package rop

import "fmt"

// Values is an ordered, fixed-arity list of payloads used for multi-value
// successes.
type Values []any

// Len returns the arity.
func (v Values) Len() int {
	return len(v)
}

// At returns the i-th payload.
func (v Values) At(i int) any {
	return v[i]
}

// Concat returns a new list holding v followed by others, positionally.
func (v Values) Concat(others ...Values) Values {
	n := len(v)
	for _, o := range others {
		n += len(o)
	}
	out := make(Values, 0, n)
	out = append(out, v...)
	for _, o := range others {
		out = append(out, o...)
	}
	return out
}

// Flatten expands any element that is itself a Values (or a tuple) in place.
func (v Values) Flatten() Values {
	out := make(Values, 0, len(v))
	for _, e := range v {
		switch inner := e.(type) {
		case Values:
			out = append(out, inner.Flatten()...)
		case interface{ Values() Values }:
			out = append(out, inner.Values().Flatten()...)
		default:
			out = append(out, e)
		}
	}
	return out
}

// ValueAt returns the i-th payload of v as T.
func ValueAt[T any](v Values, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(v) {
		return zero, fmt.Errorf("rop: index %d out of range for %d values", i, len(v))
	}
	t, ok := v[i].(T)
	if !ok {
		return zero, fmt.Errorf("rop: value %d is %T, not %T", i, v[i], zero)
	}
	return t, nil
}

// Pass wraps several initial values into one multi-value success.
func Pass(values ...any) Outcome[Values] {
	return Succeed(Values(values).Flatten())
}

// SucceedN is Pass without flattening.
func SucceedN(values ...any) Outcome[Values] {
	out := make(Values, len(values))
	copy(out, values)
	return Succeed(out)
}

// Tuple2 is a statically typed pair payload.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

func (t Tuple2[A, B]) Values() Values {
	return Values{t.V1, t.V2}
}

// Unpack returns the components in order.
func (t Tuple2[A, B]) Unpack() (A, B) {
	return t.V1, t.V2
}

// Tuple3 is a statically typed triple payload.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

func (t Tuple3[A, B, C]) Values() Values {
	return Values{t.V1, t.V2, t.V3}
}

func (t Tuple3[A, B, C]) Unpack() (A, B, C) {
	return t.V1, t.V2, t.V3
}
