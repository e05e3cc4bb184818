package mass

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/ib-77/ropx/pkg/rop"
	"github.com/ib-77/ropx/pkg/rop/core"
	"github.com/ib-77/ropx/pkg/rop/exec"
)

const tracerName = "github.com/ib-77/ropx/pkg/rop/mass"

// invocation is the per-call state of one parallel combinator: its handle,
// span and logger. It never outlives the call that created it.
type invocation struct {
	id     uuid.UUID
	ctx    context.Context
	handle *exec.Handle
	span   trace.Span
	log    zerolog.Logger
	stop   func() bool
}

func begin(ctx context.Context, e exec.Executor, combinator string, steps int) *invocation {
	id := uuid.New()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "mass."+combinator,
		trace.WithAttributes(
			attribute.String("rop.combinator", combinator),
			attribute.Int("rop.steps", steps),
			attribute.String("rop.invocation", id.String()),
		))

	h := exec.HandleFor(e)
	inv := &invocation{
		id:     id,
		ctx:    ctx,
		handle: h,
		span:   span,
		log: core.Logger(ctx).With().
			Str("component", "mass").
			Str("combinator", combinator).
			Str("invocation", id.String()).
			Logger(),
		// a cancelled caller context cancels the steps too
		stop: context.AfterFunc(ctx, h.Cancel),
	}
	return inv
}

// cancel signals the remaining steps after a result at index made them moot.
func (inv *invocation) cancel(index int, reason string) {
	if inv.handle.IsCancelled() {
		return
	}
	inv.log.Debug().Int("index", index).Str("reason", reason).Msg("cancelling remaining steps")
	inv.handle.Cancel()
}

func (inv *invocation) end(decided int, st rop.Status) {
	inv.stop()
	inv.span.SetAttributes(
		attribute.Int("rop.decided_index", decided),
		attribute.Bool("rop.success", st.IsValid()),
	)
	if !st.IsValid() {
		inv.span.SetStatus(codes.Error, st.Message())
	}
	inv.span.End()
}

// submit queues step on e and returns the one-shot slot its outcome lands in.
func submit[In, Out any](inv *invocation, e exec.Executor, index int, step exec.Step[In, Out], in In) <-chan rop.Outcome[Out] {
	slot := make(chan rop.Outcome[Out], 1)

	work := func() {
		var out rop.Outcome[Out]
		defer func() {
			if r := recover(); r != nil {
				inv.log.Error().Int("index", index).Interface("panic", r).Msg("step panicked")
				out = rop.Fail[Out](fmt.Sprintf("step panicked: %v", r))
			}
			slot <- out
		}()
		out = step.Invoke(inv.ctx, inv.handle, in)
	}

	if err := e.Execute(work); err != nil {
		inv.log.Warn().Err(err).Int("index", index).Msg("executor rejected step")
		select {
		case slot <- rop.FailStatus[Out](rop.Invalidf("executor rejected step: %v", err)):
		default:
		}
	}
	return slot
}

// await blocks on one slot and cancels the invocation when it holds a failure.
func await[Out any](inv *invocation, index int, slot <-chan rop.Outcome[Out]) rop.Outcome[Out] {
	r := <-slot
	if r.IsFailure() {
		inv.cancel(index, r.Status().Message())
	}
	return r
}
