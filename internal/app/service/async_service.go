package service

import (
	"context"

	"ponto/pkg/workerpool"
)

// AsyncService runs store work on the worker pool and waits for the result.
type AsyncService struct {
	Pool *workerpool.WorkerPool
}

func NewAsyncService(pool *workerpool.WorkerPool) *AsyncService {
	return &AsyncService{Pool: pool}
}

func (a *AsyncService) SubmitAsync(ctx context.Context, fn func() (any, error)) (any, error) {
	resCh := make(chan workerpool.Result, 1)
	if err := a.Pool.Submit(ctx, workerpool.Task{Fn: fn, ResultC: resCh}); err != nil {
		return nil, err
	}
	select {
	case res := <-resCh:
		return res.Value, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Run submits fn through a and returns its typed result.
func Run[T any](ctx context.Context, a *AsyncService, fn func(ctx context.Context) (T, error)) (T, error) {
	v, err := a.SubmitAsync(ctx, func() (any, error) { return fn(ctx) })
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
