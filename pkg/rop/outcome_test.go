package rop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestSucceed_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []int{0, 1, -7, 1 << 30} {
		o := Succeed(v)
		got, err := o.Value()
		if err != nil || got != v || !o.IsSuccess() {
			t.Fatalf("expected success with %d, got: success=%v, val=%v, err=%v", v, o.IsSuccess(), got, err)
		}
		if !o.Status().Equal(Valid) {
			t.Fatalf("expected Valid status, got %q", o.Status())
		}
	}

	s := Succeed("text")
	if s.MustValue() != "text" {
		t.Fatalf("expected 'text', got %q", s.MustValue())
	}

	type payload struct{ A, B int }
	p := Succeed(payload{A: 1, B: 2})
	if p.MustValue() != (payload{A: 1, B: 2}) {
		t.Fatalf("unexpected struct payload %+v", p.MustValue())
	}
}

func TestZeroOutcomeIsUnknownFailure(t *testing.T) {
	t.Parallel()
	var o Outcome[int]
	if o.IsSuccess() {
		t.Fatalf("zero outcome must be a failure")
	}
	if !o.Status().Equal(Unknown) {
		t.Fatalf("expected Unknown, got %q", o.Status())
	}
	if o.Id() != uuid.Nil {
		t.Fatalf("zero outcome must not carry an id")
	}
}

func TestFail_Status(t *testing.T) {
	t.Parallel()
	o := Fail[int]("boom")
	if o.IsSuccess() || !o.Status().Equal(Invalid("boom")) {
		t.Fatalf("expected failure 'boom', got %v", o)
	}
	if o.Err() == nil || o.Err().Error() != "boom" {
		t.Fatalf("expected error 'boom', got %v", o.Err())
	}
	if o.Id() == uuid.Nil || o.CreatedAt().IsZero() {
		t.Fatalf("constructed outcome must carry id and creation time")
	}
}

func TestFailStatus_ValidIsRejected(t *testing.T) {
	t.Parallel()
	o := FailStatus[int](Valid)
	if o.IsSuccess() {
		t.Fatalf("a failure built from Valid must still be a failure")
	}
	if !o.Status().Equal(Unknown) {
		t.Fatalf("expected Unknown, got %q", o.Status())
	}
}

func TestValue_BadResultAccess(t *testing.T) {
	t.Parallel()
	o := Fail[string]("nope")

	v, err := o.Value()
	if v != "" {
		t.Fatalf("expected zero value, got %q", v)
	}
	if !errors.Is(err, ErrBadResultAccess) {
		t.Fatalf("expected ErrBadResultAccess, got %v", err)
	}
	var bra *BadResultAccessError
	if !errors.As(err, &bra) || bra.Status.Message() != "nope" {
		t.Fatalf("expected *BadResultAccessError carrying 'nope', got %v", err)
	}
}

func TestMustValue_PanicsOnFailure(t *testing.T) {
	t.Parallel()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrBadResultAccess) {
			t.Fatalf("expected panic with ErrBadResultAccess, got %v", r)
		}
	}()
	_ = Fail[int]("x").MustValue()
	t.Fatalf("MustValue must panic on failure")
}

func TestValueOr(t *testing.T) {
	t.Parallel()
	if Fail[int]("x").ValueOr(9) != 9 {
		t.Fatalf("expected default on failure")
	}
	if Succeed(3).ValueOr(9) != 3 {
		t.Fatalf("expected payload on success")
	}
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()
	src := Fail[int]("first")
	dst := FailFrom[int, string](src)
	if dst.IsSuccess() || !dst.Status().Equal(src.Status()) {
		t.Fatalf("expected status %q, got %q", src.Status(), dst.Status())
	}
	if dst.Id() != src.Id() || !dst.CreatedAt().Equal(src.CreatedAt()) {
		t.Fatalf("expected id and creation time to be preserved")
	}
	if FailFrom[int, int](Succeed(1)).IsSuccess() {
		t.Fatalf("FailFrom must never produce a success")
	}
}

func TestFailErr(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk full")
	o := FailErr[int](cause)
	if !errors.Is(o.Err(), cause) {
		t.Fatalf("expected failure to unwrap to its cause")
	}
	if !FailErr[int](nil).Status().IsUnknown() {
		t.Fatalf("nil error must give an Unknown failure")
	}
}

func TestTake_LeavesUnknown(t *testing.T) {
	t.Parallel()
	src := Succeed(5)
	dst := Take(&src)
	if dst.MustValue() != 5 {
		t.Fatalf("expected moved outcome to hold 5")
	}
	if src.IsSuccess() || !src.Status().Equal(Unknown) {
		t.Fatalf("expected source to be an Unknown failure, got %v", src)
	}
}

func TestOutcome_String(t *testing.T) {
	t.Parallel()
	if got := Succeed(3).String(); got != "Succeed(3)" {
		t.Fatalf("unexpected %q", got)
	}
	if got := Fail[int]("bad").String(); got != "Fail(bad)" {
		t.Fatalf("unexpected %q", got)
	}
}
