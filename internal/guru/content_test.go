package guru

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vgn96186/Guru-sub000/internal/llm"
)

func contentJSON(title string) json.RawMessage {
	out, _ := json.Marshal(map[string]string{
		"title": title,
		"body":  "Q: First-line drug for TB?\nA: Isoniazid.",
	})
	return out
}

func TestGenerate_ReturnsContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: contentJSON("TB Drug Flashcards")})
	gen := NewGenerator(mock, DefaultConfig())

	c, err := gen.Generate(context.Background(), ContentRequest{
		TopicID:    "t3",
		TopicName:  "TB Drugs",
		Subject:    "Pharmacology",
		Kind:       "flashcards",
		Confidence: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Title != "TB Drug Flashcards" || c.Kind != "flashcards" {
		t.Errorf("content = %+v", c)
	}

	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "flashcards") || !strings.Contains(msg, "TB Drugs") {
		t.Errorf("prompt missing topic or kind: %s", msg)
	}
}

func TestGenerate_CachesPerTopicAndKind(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: contentJSON("first")},
		llm.MockResponse{Content: contentJSON("second")},
	)
	gen := NewGenerator(mock, DefaultConfig())

	req := ContentRequest{TopicID: "t1", TopicName: "Cardiac Cycle", Subject: "Physiology", Kind: "notes"}

	a, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	b, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	if a != b {
		t.Error("same topic and kind should hit the cache")
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}

	// A different kind is a separate cache entry.
	req.Kind = "quiz"
	c, err := gen.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("third: %v", err)
	}
	if c.Title != "second" {
		t.Errorf("title = %q, want second", c.Title)
	}
}

func TestGenerate_UnknownKindStillPrompts(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: contentJSON("summary")})
	gen := NewGenerator(mock, DefaultConfig())

	if _, err := gen.Generate(context.Background(), ContentRequest{
		TopicID: "t1", TopicName: "Cardiac Cycle", Kind: "interpretive-dance",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(mock.Calls[0].Messages[0].Content, "study summary") {
		t.Error("unknown kinds should fall back to a generic summary instruction")
	}
}
