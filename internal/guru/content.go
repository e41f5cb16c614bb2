package guru

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/vgn96186/Guru-sub000/internal/llm"
)

// Generator produces study material for topics. Generated material is
// cached per topic and kind for the life of the process, so re-opening
// the same item in a session does not burn another request.
type Generator struct {
	provider llm.Provider
	cfg      Config

	mu    sync.Mutex
	cache map[string]*Content
}

// NewGenerator creates a content generator.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{
		provider: provider,
		cfg:      cfg,
		cache:    make(map[string]*Content),
	}
}

type contentOutput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Generate returns study material for the topic, from cache when available.
func (g *Generator) Generate(ctx context.Context, req ContentRequest) (*Content, error) {
	key := req.TopicID + "/" + req.Kind

	g.mu.Lock()
	if cached, ok := g.cache[key]; ok {
		g.mu.Unlock()
		return cached, nil
	}
	g.mu.Unlock()

	ctx = llm.WithPurpose(ctx, "content-"+req.Kind)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: contentSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContentUserMessage(req)},
		},
		Schema:      ContentSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("content generation: %w", err)
	}

	var out contentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse content response: %w", err)
	}

	content := &Content{
		TopicID: req.TopicID,
		Kind:    req.Kind,
		Title:   out.Title,
		Body:    out.Body,
	}

	g.mu.Lock()
	g.cache[key] = content
	g.mu.Unlock()

	return content, nil
}
