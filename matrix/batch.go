// SPDX-License-Identifier: MIT

package matrix

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// SolveAll solves every system independently and returns the solutions in
// input order.
// Implementation:
//   - Stage 1: resolve options (worker bound).
//   - Stage 2: fan out one task per system on an errgroup limited to the
//     worker count; each task writes only its own output slot.
//   - Stage 3: wait; the only failure is context cancellation.
//
// Errors:
//   - ctx.Err() if the context is done before every system was solved.
//
// Complexity: O(k·n³) total work for k systems of dimension n.
func SolveAll(ctx context.Context, systems []System, opts ...Option) ([]Solution, error) {
	o := gatherOptions(opts...)
	out := make([]Solution, len(systems))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)
	for i, sys := range systems {
		if err := gctx.Err(); err != nil {
			break
		}
		i, sys := i, sys
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = sys.Solve()

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
