package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Aggregators issue their independent reads through an errgroup and proceed
// only once every read has settled: a join-all barrier with no assumptions
// about completion order. A primary failure cancels the group context so
// sibling fetches stop early instead of writing into an abandoned screen.

// primary schedules a read whose failure blocks the whole screen.
func primary[T any](g *errgroup.Group, ctx context.Context, dst *T, fn func(context.Context) (T, error)) {
	g.Go(func() error {
		v, err := fn(ctx)
		if err != nil {
			return err
		}
		*dst = v
		return nil
	})
}

// secondary schedules a supplementary read. Any failure (typically a 404
// meaning "not enrolled" or "no review yet") degrades to the zero value
// instead of failing the aggregation.
func secondary[T any](g *errgroup.Group, ctx context.Context, dst *T, fn func(context.Context) (T, error)) {
	g.Go(func() error {
		if v, err := fn(ctx); err == nil {
			*dst = v
		}
		return nil
	})
}
