package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map runs f over src with at most concurrencyLimit calls in flight and returns
// the results in the order of src. The first error cancels ctx for the
// remaining calls and is returned unmodified.
func Map[T any, D any](ctx context.Context, src []T, concurrencyLimit int, f func(context.Context, T) (D, error)) ([]D, error) {
	if len(src) == 0 {
		return []D{}, nil
	}

	if concurrencyLimit <= 0 {
		concurrencyLimit = len(src)
	}

	results := make([]D, len(src))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrencyLimit)
	for i, element := range src {
		i, element := i, element
		g.Go(func() error {
			r, err := f(gctx, element)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// FlatMap is Map followed by concatenation of the per-element slices.
func FlatMap[T any, D any](ctx context.Context, src []T, concurrencyLimit int, f func(context.Context, T) ([]D, error)) ([]D, error) {
	r, err := Map(ctx, src, concurrencyLimit, f)
	if err != nil {
		return nil, err
	}

	flattened := make([]D, 0, len(r))
	for _, v := range r {
		flattened = append(flattened, v...)
	}

	return flattened, nil
}
