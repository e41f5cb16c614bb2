package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LLMRequestEntry captures one call to a language-model provider.
type LLMRequestEntry struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMLogRepo appends language-model request records.
type LLMLogRepo interface {
	Append(ctx context.Context, e LLMRequestEntry) error
}

type llmLogRepo struct {
	db *sqlx.DB
}

func (r *llmLogRepo) Append(ctx context.Context, e LLMRequestEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO llm_requests (provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Provider, e.Model, e.Purpose, e.InputTokens, e.OutputTokens, e.LatencyMs, e.Success, e.ErrorMessage)
	if err != nil {
		return fmt.Errorf("append llm request: %w", err)
	}
	return nil
}
