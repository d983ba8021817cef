package core

import "context"

type outcome struct {
	result Result
	err    error
}

// Await runs start with a completion and blocks until that completion fires
// or ctx is done. Errors returned by start come back unchanged, before any
// waiting.
func Await(ctx context.Context, start func(done Completion) error) (Result, error) {
	if start == nil {
		return Result{}, internalError("dwolla: await requires a start function")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	outcomes := make(chan outcome, 1)
	if err := start(func(result Result, err error) {
		select {
		case outcomes <- outcome{result: result, err: err}:
		default:
		}
	}); err != nil {
		return Result{}, err
	}

	select {
	case out := <-outcomes:
		return out.result, out.err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
