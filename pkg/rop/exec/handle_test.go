package exec

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropx/pkg/rop"
)

func TestHandle_Cancel(t *testing.T) {
	t.Parallel()
	h := NewHandle()
	assert.True(t, h.IsWorking())
	assert.False(t, h.IsCancelled())

	h.Cancel()
	h.Cancel()

	assert.False(t, h.IsWorking())
	assert.True(t, h.IsCancelled())
	select {
	case <-h.Done():
	default:
		t.Fatal("Done must be closed after Cancel")
	}
}

func TestHandle_ZeroValue(t *testing.T) {
	t.Parallel()
	var h Handle
	assert.True(t, h.IsWorking())
	done := h.Done()
	assert.NotNil(t, done)

	assert.NotPanics(t, h.Cancel)
	assert.NotPanics(t, h.Cancel)
	assert.True(t, h.IsCancelled())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Done not closed after Cancel")
	}
	assert.NotPanics(t, h.Yield)

	fresh := &Handle{}
	fresh.Cancel()
	<-fresh.Done()
}

func TestHandle_ConcurrentCancel(t *testing.T) {
	t.Parallel()
	h := NewHandle()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.Cancel()
			_ = h.IsCancelled()
		}()
	}
	wg.Wait()
	assert.True(t, h.IsCancelled())
}

func TestHandle_Yield(t *testing.T) {
	t.Parallel()
	NewHandle().Yield()

	calls := 0
	h := NewHandleWithYield(func() { calls++ })
	h.Yield()
	h.Yield()
	assert.Equal(t, 2, calls)
}

func TestHandleFor_DefaultsToPlainHandle(t *testing.T) {
	t.Parallel()
	h := HandleFor(Inline{})
	assert.Nil(t, h.yield)
	assert.True(t, h.IsWorking())
}

func TestInline_RunsImmediately(t *testing.T) {
	t.Parallel()
	ran := false
	assert.NoError(t, Inline{}.Execute(func() { ran = true }))
	assert.True(t, ran)
}

func TestExecutorFunc(t *testing.T) {
	t.Parallel()
	refuse := errors.New("refused")
	e := ExecutorFunc(func(func()) error { return refuse })
	assert.ErrorIs(t, e.Execute(func() {}), refuse)
}

func TestSteps_CallForms(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	h := NewHandle()
	h.Cancel()

	plain := Plain(func(_ context.Context, in int) rop.Outcome[int] { return rop.Succeed(in + 1) })
	assert.False(t, plain.UsesHandle())
	assert.Equal(t, 2, plain.Invoke(ctx, h, 1).MustValue())

	var seen *Handle
	withHandle := WithHandle(func(_ context.Context, got *Handle, in int) rop.Outcome[int] {
		seen = got
		if got.IsCancelled() {
			return rop.Fail[int]("cancelled")
		}
		return rop.Succeed(in)
	})
	assert.True(t, withHandle.UsesHandle())
	r := withHandle.Invoke(ctx, h, 1)
	assert.Same(t, h, seen)
	assert.Equal(t, "cancelled", r.Status().Message())
}

func TestSteps_Adapters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	m := MapStep(func(_ context.Context, in int) string { return time.Duration(in).String() })
	assert.Equal(t, "1ns", m.Invoke(ctx, nil, 1).MustValue())

	tr := TryStep(func(_ context.Context, in int) (int, error) {
		if in < 0 {
			return 0, errors.New("negative")
		}
		return in, nil
	})
	assert.Equal(t, 4, tr.Invoke(ctx, nil, 4).MustValue())
	assert.Equal(t, "negative", tr.Invoke(ctx, nil, -1).Status().Message())
}
