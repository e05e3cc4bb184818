package solo

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/exec"
)

func failStep(msg string, calls *[]string) exec.Step[int, int] {
	return exec.Plain(func(ctx context.Context, in int) rop.Outcome[int] {
		*calls = append(*calls, msg)
		return rop.Fail[int](msg)
	})
}

func okStep(name string, out int, calls *[]string) exec.Step[int, int] {
	return exec.Plain(func(ctx context.Context, in int) rop.Outcome[int] {
		*calls = append(*calls, name)
		return rop.Succeed(out)
	})
}

func TestAny_AllFailReturnsLastStatus(t *testing.T) {
	t.Parallel()
	var calls []string
	out := Any(context.Background(), Succeed(1),
		failStep("A", &calls), failStep("B", &calls), failStep("C", &calls))

	if out.IsSuccess() || out.Status().Message() != "C" {
		t.Fatalf("expected last-attempted failure 'C', got %v", out)
	}
	if !reflect.DeepEqual(calls, []string{"A", "B", "C"}) {
		t.Fatalf("expected every step attempted in order, got %v", calls)
	}
}

func TestAny_FirstSuccessStopsScan(t *testing.T) {
	t.Parallel()
	var calls []string
	out := Any(context.Background(), Succeed(1),
		failStep("A", &calls), okStep("B", 2, &calls), okStep("C", 3, &calls))

	if out.MustValue() != 2 {
		t.Fatalf("expected success from step B, got %v", out)
	}
	if !reflect.DeepEqual(calls, []string{"A", "B"}) {
		t.Fatalf("steps after the first success must not run, got %v", calls)
	}
}

func TestAny_FailedInputSkipsSteps(t *testing.T) {
	t.Parallel()
	var calls []string
	out := Any(context.Background(), Fail[int]("input"), okStep("A", 1, &calls))
	if out.Status().Message() != "input" || len(calls) != 0 {
		t.Fatalf("expected input failure without invoking steps, got %v (calls %v)", out, calls)
	}
}

func TestAny_NoSteps(t *testing.T) {
	t.Parallel()
	out := Any[int, int](context.Background(), Succeed(1))
	if !errors.Is(out.Err(), exec.ErrNoSteps) {
		t.Fatalf("expected ErrNoSteps, got %v", out.Err())
	}
}

func TestAny_HandleIsNeverCancelled(t *testing.T) {
	t.Parallel()
	var calls []string
	checked := exec.WithHandle(func(ctx context.Context, h *exec.Handle, in int) rop.Outcome[int] {
		if h.IsCancelled() {
			return rop.Fail[int]("cancelled")
		}
		return rop.Succeed(in * 10)
	})
	out := Any(context.Background(), Succeed(4), failStep("A", &calls), checked)
	if out.MustValue() != 40 {
		t.Fatalf("expected 40, got %v", out)
	}
}

func TestAll_FirstFailureWinsAndShortCircuits(t *testing.T) {
	t.Parallel()
	var calls []string
	out := All(context.Background(), Succeed(1),
		failStep("X", &calls), okStep("side-effect", 1, &calls))

	if out.IsSuccess() || out.Status().Message() != "X" {
		t.Fatalf("expected failure 'X', got %v", out)
	}
	if !reflect.DeepEqual(calls, []string{"X"}) {
		t.Fatalf("steps after the first failure must not run, got %v", calls)
	}
}

func TestAll_ConcatenatesInOrder(t *testing.T) {
	t.Parallel()
	var calls []string
	out := All(context.Background(), Succeed(1),
		okStep("a", 10, &calls), okStep("b", 20, &calls), okStep("c", 30, &calls))

	if !reflect.DeepEqual(out.MustValue(), []int{10, 20, 30}) {
		t.Fatalf("expected [10 20 30], got %v", out)
	}
}

func TestAll_FailedInputSkipsSteps(t *testing.T) {
	t.Parallel()
	var calls []string
	out := All(context.Background(), Fail[int]("input"), okStep("a", 1, &calls))
	if out.Status().Message() != "input" || len(calls) != 0 {
		t.Fatalf("expected input failure without invoking steps, got %v", out)
	}
}

func TestAll2AndAll3(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	toString := exec.MapStep(func(ctx context.Context, in int) string { return "n" })
	toFloat := exec.MapStep(func(ctx context.Context, in int) float64 { return float64(in) / 2 })
	toBool := exec.MapStep(func(ctx context.Context, in int) bool { return in > 0 })

	pair := All2(ctx, Succeed(3), toString, toFloat)
	s, f := pair.MustValue().Unpack()
	if s != "n" || f != 1.5 {
		t.Fatalf("unexpected pair %v", pair)
	}

	triple := All3(ctx, Succeed(3), toString, toFloat, toBool)
	if !triple.MustValue().V3 {
		t.Fatalf("unexpected triple %v", triple)
	}

	sideEffect := false
	broken := All3(ctx, Succeed(3), toString,
		exec.Plain(func(ctx context.Context, in int) rop.Outcome[float64] { return rop.Fail[float64]("mid") }),
		exec.MapStep(func(ctx context.Context, in int) bool { sideEffect = true; return true }))
	if broken.Status().Message() != "mid" || sideEffect {
		t.Fatalf("expected failure 'mid' without running the third step, got %v", broken)
	}
}

func TestAllValues_Flattens(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	one := exec.MapStep(func(ctx context.Context, in int) rop.Values { return rop.Values{in} })
	two := exec.MapStep(func(ctx context.Context, in int) rop.Values { return rop.Values{in + 1, rop.Values{"x", "y"}} })

	out := AllValues(ctx, Succeed(1), one, two)
	want := rop.Values{1, 2, "x", "y"}
	if !reflect.DeepEqual(out.MustValue(), want) {
		t.Fatalf("expected %v, got %v", want, out)
	}
}

func TestAnyOfAllOf(t *testing.T) {
	t.Parallel()
	var calls []string
	anyOf := AnyOf(failStep("A", &calls), okStep("B", 2, &calls))
	allOf := AllOf(okStep("C", 3, &calls), okStep("D", 4, &calls))

	ctx := context.Background()
	if anyOf(ctx, Succeed(0)).MustValue() != 2 {
		t.Fatalf("AnyOf returned the wrong value")
	}
	if !reflect.DeepEqual(allOf(ctx, Succeed(0)).MustValue(), []int{3, 4}) {
		t.Fatalf("AllOf returned the wrong value")
	}
}
