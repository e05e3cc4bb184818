package core

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/ropx/pkg/rop/exec"
)

type OptionKey string

const (
	WorkerOptionKey OptionKey = "worker_options"
	LoggerOptionKey OptionKey = "logger_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
	Name     string
}

type LoggerOptions struct {
	Logger zerolog.Logger
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return WithNamedWorkerOptions(ctx, "", maxWorkers)
}

func WithNamedWorkerOptions(ctx context.Context, name string, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: MaxLimitOption{Value: maxWorkers}, Name: name})
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func GetWorkerName(ctx context.Context, defaultName string) string {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.Name != "" {
		return options.Name
	}
	return defaultName
}

func WithLogger(ctx context.Context, l zerolog.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: l})
}

// Logger returns the logger carried by ctx, or a disabled one.
func Logger(ctx context.Context) zerolog.Logger {
	options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
	if ok {
		return options.Logger
	}
	return zerolog.Nop()
}

// NewPool builds an exec.Pool from the worker and logger options carried by
// ctx. Missing options fall back to exec.DefaultWorkers and a disabled logger;
// explicit opts are applied last.
func NewPool(ctx context.Context, opts ...exec.PoolOption) (*exec.Pool, error) {
	base := []exec.PoolOption{
		exec.WithName(GetWorkerName(ctx, "default")),
		exec.WithLogger(Logger(ctx)),
	}
	return exec.NewPool(GetWorkerMaxCount(ctx, exec.DefaultWorkers()), append(base, opts...)...)
}
