package guru

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vgn96186/Guru-sub000/internal/llm"
)

// ErrEmptyPlan is returned when the model selects no usable topics.
var ErrEmptyPlan = errors.New("plan selected no usable topics")

// Planner chooses session topics from a ranked candidate list. The
// session builder treats any error as a signal to fall back to
// deterministic selection.
type Planner interface {
	PlanSession(ctx context.Context, req PlanRequest) (*PlanResult, error)
}

// Service implements Planner on top of an llm.Provider.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a planning service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type planOutput struct {
	SelectedTopicIDs []string `json:"selected_topic_ids"`
	FocusNote        string   `json:"focus_note"`
	GuruMessage      string   `json:"guru_message"`
}

// PlanSession asks the model to pick session topics. IDs outside the
// candidate set are discarded; if nothing usable remains the call fails
// so the caller can plan deterministically.
func (s *Service) PlanSession(ctx context.Context, req PlanRequest) (*PlanResult, error) {
	if len(req.Candidates) == 0 {
		return nil, ErrEmptyPlan
	}

	ctx = llm.WithPurpose(ctx, "session-plan")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(req)},
		},
		Schema:      SessionPlanSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("session planning: %w", err)
	}

	var out planOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse plan response: %w", err)
	}

	valid := make(map[string]bool, len(req.Candidates))
	for _, c := range req.Candidates {
		valid[c.ID] = true
	}

	var selected []string
	seen := make(map[string]bool)
	for _, id := range out.SelectedTopicIDs {
		if valid[id] && !seen[id] {
			selected = append(selected, id)
			seen[id] = true
		}
	}

	if len(selected) == 0 {
		return nil, ErrEmptyPlan
	}

	return &PlanResult{
		SelectedTopicIDs: selected,
		FocusNote:        out.FocusNote,
		GuruMessage:      out.GuruMessage,
	}, nil
}
