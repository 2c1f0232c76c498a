package chain

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// assign computes new fields from the input map and merges them in.
type assign struct {
	fields map[string]Runnable
}

// Assign returns a Runnable that adds computed fields to a Values input
// without dropping the existing ones. Every field Runnable receives the full
// original input; fields are computed concurrently. A computed field with the
// same name as an input field overwrites it.
func Assign(fields map[string]Runnable) Runnable {
	return &assign{fields: fields}
}

func (a *assign) Name() string {
	keys := lo.Keys(a.fields)
	sort.Strings(keys)
	return "assign[" + strings.Join(keys, ",") + "]"
}

func (a *assign) Invoke(ctx context.Context, input any) (any, error) {
	in, err := AsValues(input)
	if err != nil {
		return nil, fmt.Errorf("assign: %w", err)
	}

	computed := make(Values, len(a.fields))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	for key, field := range a.fields {
		g.Go(func() error {
			out, err := field.Invoke(gctx, in)
			if err != nil {
				return err
			}
			mu.Lock()
			computed[key] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(Values, len(in)+len(computed))
	for k, v := range in {
		merged[k] = v
	}
	for k, v := range computed {
		merged[k] = v
	}
	return merged, nil
}

// pick selects a subset of fields from a Values input.
type pick struct {
	keys []string
}

// Pick returns a Runnable that keeps only the named fields of a Values input.
// Unknown keys are ignored; the result is always a Values map, even for a
// single key.
func Pick(keys ...string) Runnable {
	return &pick{keys: keys}
}

func (p *pick) Name() string {
	return "pick[" + strings.Join(p.keys, ",") + "]"
}

func (p *pick) Invoke(_ context.Context, input any) (any, error) {
	in, err := AsValues(input)
	if err != nil {
		return nil, fmt.Errorf("pick: %w", err)
	}
	return Values(lo.PickByKeys(in, p.keys)), nil
}
