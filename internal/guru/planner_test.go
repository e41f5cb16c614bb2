package guru

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vgn96186/Guru-sub000/internal/llm"
)

func planCandidates() []Candidate {
	return []Candidate{
		{ID: "t1", Name: "Cardiac Cycle", Subject: "Physiology", Score: 42, Status: "seen", Confidence: 2},
		{ID: "t2", Name: "Brachial Plexus", Subject: "Anatomy", Score: 30, Status: "reviewed", Confidence: 3},
		{ID: "t3", Name: "TB Drugs", Subject: "Pharmacology", Score: 88, Status: "seen", Confidence: 1, Nemesis: true, WrongCount: 4},
	}
}

func planJSON(ids ...string) json.RawMessage {
	out, _ := json.Marshal(map[string]any{
		"selected_topic_ids": ids,
		"focus_note":         "Stay on pharmacology today.",
		"guru_message":       "One topic at a time.",
	})
	return out
}

func TestPlanSession_SelectsFromCandidates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON("t3", "t1")})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.PlanSession(context.Background(), PlanRequest{
		Candidates:      planCandidates(),
		DurationMinutes: 45,
		Mood:            "focused",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.SelectedTopicIDs) != 2 || result.SelectedTopicIDs[0] != "t3" {
		t.Errorf("selected = %v", result.SelectedTopicIDs)
	}
	if result.FocusNote == "" || result.GuruMessage == "" {
		t.Error("focus note and message should be set")
	}
}

func TestPlanSession_DiscardsUnknownIDs(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON("made-up", "t2", "t2")})
	svc := NewService(mock, DefaultConfig())

	result, err := svc.PlanSession(context.Background(), PlanRequest{Candidates: planCandidates()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.SelectedTopicIDs) != 1 || result.SelectedTopicIDs[0] != "t2" {
		t.Errorf("selected = %v, want [t2]", result.SelectedTopicIDs)
	}
}

func TestPlanSession_AllUnknown_Errors(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON("x1", "x2")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.PlanSession(context.Background(), PlanRequest{Candidates: planCandidates()})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
}

func TestPlanSession_NoCandidates_Errors(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, DefaultConfig())

	_, err := svc.PlanSession(context.Background(), PlanRequest{})
	if !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got %v", err)
	}
	if mock.CallCount() != 0 {
		t.Error("no request should be made with an empty candidate list")
	}
}

func TestPlanSession_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	svc := NewService(mock, DefaultConfig())

	if _, err := svc.PlanSession(context.Background(), PlanRequest{Candidates: planCandidates()}); err == nil {
		t.Fatal("expected error")
	}
}

func TestPlanSession_PromptMentionsNemesis(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: planJSON("t1")})
	svc := NewService(mock, DefaultConfig())

	_, err := svc.PlanSession(context.Background(), PlanRequest{
		Candidates:       planCandidates(),
		DurationMinutes:  30,
		Mood:             "stressed",
		RecentTopicNames: []string{"Cardiac Cycle"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{"NEMESIS", "stressed", "30 minutes", "Recently studied"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
	if mock.Calls[0].Schema != SessionPlanSchema {
		t.Error("request should carry the session plan schema")
	}
}
