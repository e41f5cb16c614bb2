package llm

import (
	"context"
	"encoding/json"
)

// Provider is the boundary to a language-model service. The scheduling
// core treats it as a fallible collaborator: callers must recover from
// failure (the session builder falls back to deterministic selection).
type Provider interface {
	// Generate sends a prompt and returns a structured response. When
	// the request carries a Schema, the returned Content is JSON that
	// has been validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Guru only does single-turn
	// generation, so this is one user message in practice.
	Messages []Message

	// Schema, when set, requests structured output conforming to the
	// given JSON Schema. When nil the Content is raw text.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0. Zero means deterministic.
	Temperature float64
}

// Message is one turn in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema, kebab-case (e.g. "session-plan").
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition.
	Definition map[string]any
}

// Response is the model's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
