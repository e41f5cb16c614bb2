package llm

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// LoggingProvider is a decorator that records every model request.
type LoggingProvider struct {
	inner   Provider
	logRepo store.LLMLogRepo
}

// WithLogging wraps a Provider with request logging.
func WithLogging(p Provider, repo store.LLMLogRepo) Provider {
	if repo == nil {
		return p
	}
	return &LoggingProvider{inner: p, logRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := store.LLMRequestEntry{
		Provider:  l.inner.ModelID(),
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
		entry.Model = resp.Model
	}
	if err != nil {
		entry.ErrorMessage = err.Error()
	}

	// Logging failures never fail the request.
	if logErr := l.logRepo.Append(ctx, entry); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log model request: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
