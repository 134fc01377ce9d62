package piwikpro

import (
	"context"
)

// Promise is the deferred result of an SDK call started with Go or Exec.
type Promise[T any] struct {
	done  chan struct{}
	value T
	err   error
}

// Go runs fn in its own goroutine and returns a Promise for its result. The
// call is detached from ctx cancellation: a caller may stop awaiting, but the
// tracked effect still takes place.
func Go[T any](ctx context.Context, fn func(context.Context) (T, error)) *Promise[T] {
	p := &Promise[T]{done: make(chan struct{})}
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(p.done)
		p.value, p.err = fn(ctx)
	}()

	return p
}

// Exec is Go for calls that produce no value.
func Exec(ctx context.Context, fn func(context.Context) error) *Promise[struct{}] {
	return Go(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
}

// Await blocks until the call has completed or ctx is done, whichever comes
// first.
func (p *Promise[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-p.done:
		return p.value, p.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

func (p *Promise[T]) Done() <-chan struct{} {
	return p.done
}
