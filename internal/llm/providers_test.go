package llm

import (
	"errors"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

func assertRateLimit(t *testing.T, err error) {
	t.Helper()
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("expected ErrRateLimit, got %v", err)
	}
}

func assertUnavailable(t *testing.T, err error) {
	t.Helper()
	var unavail *ErrProviderUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("expected ErrProviderUnavailable, got %v", err)
	}
}

// Client errors must pass through untyped so neither the retry layer
// nor the fallback chain treats them as transient.
func assertPassthrough(t *testing.T, mapped, original error) {
	t.Helper()
	if !errors.Is(mapped, original) {
		t.Errorf("mapped error should wrap the original, got %v", mapped)
	}
	var rl *ErrRateLimit
	var unavail *ErrProviderUnavailable
	if errors.As(mapped, &rl) || errors.As(mapped, &unavail) {
		t.Errorf("client error classified as transient: %v", mapped)
	}
}

func TestMapAnthropicError(t *testing.T) {
	assertRateLimit(t, mapAnthropicError(&anthropic.Error{StatusCode: 429}))
	assertUnavailable(t, mapAnthropicError(&anthropic.Error{StatusCode: 503}))
	assertUnavailable(t, mapAnthropicError(errors.New("connection refused")))

	badKey := &anthropic.Error{StatusCode: 401}
	assertPassthrough(t, mapAnthropicError(badKey), badKey)
}

func TestMapOpenAIError(t *testing.T) {
	assertRateLimit(t, mapOpenAIError(&openai.APIError{HTTPStatusCode: 429}))
	assertUnavailable(t, mapOpenAIError(&openai.APIError{HTTPStatusCode: 500}))
	assertUnavailable(t, mapOpenAIError(errors.New("connection refused")))

	badReq := &openai.APIError{HTTPStatusCode: 400}
	assertPassthrough(t, mapOpenAIError(badReq), badReq)
}

func TestMapGeminiError(t *testing.T) {
	assertRateLimit(t, mapGeminiError(&genai.APIError{Code: 429}))
	assertUnavailable(t, mapGeminiError(&genai.APIError{Code: 502}))
	assertUnavailable(t, mapGeminiError(errors.New("connection refused")))

	badKey := &genai.APIError{Code: 403}
	assertPassthrough(t, mapGeminiError(badKey), badKey)
}
