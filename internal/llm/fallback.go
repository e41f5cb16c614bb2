package llm

import (
	"context"
	"errors"
)

// FallbackProvider tries a chain of providers in order. A provider that
// is rate limited or unavailable hands the request to the next in the
// chain; any other error (including schema-invalid output) is returned
// immediately so the retry layer can handle it.
type FallbackProvider struct {
	chain []Provider
}

// WithFallback builds a provider chain. At least one provider is
// required; an empty chain is a programming error.
func WithFallback(providers ...Provider) Provider {
	if len(providers) == 0 {
		panic("llm: WithFallback requires at least one provider")
	}
	if len(providers) == 1 {
		return providers[0]
	}
	return &FallbackProvider{chain: providers}
}

func (f *FallbackProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	for _, p := range f.chain {
		resp, err := p.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if !isProviderDown(err) {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}
	return nil, lastErr
}

// ModelID reports the primary provider's model.
func (f *FallbackProvider) ModelID() string {
	return f.chain[0].ModelID()
}

func isProviderDown(err error) bool {
	var rl *ErrRateLimit
	if errors.As(err, &rl) {
		return true
	}
	var unavail *ErrProviderUnavailable
	return errors.As(err, &unavail)
}
