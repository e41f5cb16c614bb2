package llm

import (
	"context"
	"fmt"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// full middleware stack: caller → retry → fallback chain → logging → base.
// Rate-limit and unavailability errors walk the fallback chain before the
// retry layer gives up.
func NewProvider(ctx context.Context, cfg Config, logRepo store.LLMLogRepo) (Provider, error) {
	primary, err := newBaseProvider(ctx, cfg, cfg.Provider)
	if err != nil {
		return nil, err
	}
	if cfg.Provider == "mock" {
		return primary, nil
	}

	chain := []Provider{WithLogging(primary, logRepo)}
	for _, name := range cfg.Fallbacks {
		fb, err := newBaseProvider(ctx, cfg, name)
		if err != nil {
			return nil, fmt.Errorf("fallback %s: %w", name, err)
		}
		chain = append(chain, WithLogging(fb, logRepo))
	}

	return WithRetry(WithFallback(chain...), cfg.Retry), nil
}

func newBaseProvider(ctx context.Context, cfg Config, name string) (Provider, error) {
	var (
		p   Provider
		err error
	)
	switch name {
	case "anthropic":
		p, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		p, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		p, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown provider: %q", name)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", name, err)
	}
	return p, nil
}
