package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// fallbacks tries a primary step and falls back to alternates on error.
type fallbacks struct {
	primary    Runnable
	alternates []Runnable
}

// Fallbacks wraps primary so that when it fails, each alternate is tried in
// order. The result of the first success is returned; if everything fails,
// the errors are joined.
func Fallbacks(primary Runnable, alternates ...Runnable) Runnable {
	return &fallbacks{primary: primary, alternates: alternates}
}

func (f *fallbacks) Name() string {
	names := make([]string, 0, len(f.alternates)+1)
	names = append(names, f.primary.Name())
	for _, alt := range f.alternates {
		names = append(names, alt.Name())
	}
	return "fallbacks[" + strings.Join(names, " -> ") + "]"
}

func (f *fallbacks) Invoke(ctx context.Context, input any) (any, error) {
	var errs []error

	out, err := f.primary.Invoke(ctx, input)
	if err == nil {
		return out, nil
	}
	errs = append(errs, err)

	for _, alt := range f.alternates {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		out, err = alt.Invoke(ctx, input)
		if err == nil {
			return out, nil
		}
		errs = append(errs, err)
	}

	return nil, fmt.Errorf("all fallbacks failed: %w", errors.Join(errs...))
}
