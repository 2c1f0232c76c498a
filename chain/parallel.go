package chain

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// parallel fans the same input out to named branches concurrently and
// collects their outputs into a Values map.
type parallel struct {
	branches map[string]Runnable
}

// Parallel returns a Runnable that invokes every branch with the same input
// concurrently. The result is a Values map keyed by branch name. The first
// branch error cancels the remaining branches and is returned.
func Parallel(branches map[string]Runnable) Runnable {
	return &parallel{branches: branches}
}

func (p *parallel) Name() string {
	keys := make([]string, 0, len(p.branches))
	for k := range p.branches {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "parallel[" + strings.Join(keys, ",") + "]"
}

func (p *parallel) Invoke(ctx context.Context, input any) (any, error) {
	results := make(Values, len(p.branches))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for key, branch := range p.branches {
		g.Go(func() error {
			out, err := branch.Invoke(gctx, input)
			if err != nil {
				return err
			}
			mu.Lock()
			results[key] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Batch invokes r once per input with at most maxConcurrency in-flight
// invocations (0 means unbounded). Results keep input order. The first error
// cancels outstanding work and is returned.
func Batch(ctx context.Context, r Runnable, inputs []any, maxConcurrency int) ([]any, error) {
	results := make([]any, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	if maxConcurrency > 0 {
		g.SetLimit(maxConcurrency)
	}
	for i, input := range inputs {
		g.Go(func() error {
			out, err := r.Invoke(gctx, input)
			if err != nil {
				return err
			}
			results[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
