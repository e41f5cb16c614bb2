package agenda

import (
	"errors"
	"testing"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

func TestBuildPYQSprint_Empty(t *testing.T) {
	if _, err := BuildPYQSprint(nil); !errors.Is(err, ErrNoTopics) {
		t.Fatalf("expected ErrNoTopics, got %v", err)
	}
}

func TestBuildPYQSprint_OrderAndShape(t *testing.T) {
	studied := topic("s1", 4, store.StatusSeen, 2)
	studied.TimesStudied = 3
	studiedHigh := topic("s2", 9, store.StatusReviewed, 3)
	studiedHigh.TimesStudied = 1
	fresh := topic("n1", 10, store.StatusUnseen, 0)

	a, err := BuildPYQSprint([]store.TopicView{fresh, studied, studiedHigh})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Studied topics first, then by priority; unstudied last.
	wantOrder := []string{"s2", "s1", "n1"}
	for i, want := range wantOrder {
		if a.Items[i].Topic.ID != want {
			t.Errorf("item %d = %s, want %s", i, a.Items[i].Topic.ID, want)
		}
	}

	for _, item := range a.Items {
		if len(item.ContentTypes) != 1 || item.ContentTypes[0] != ContentQuiz {
			t.Errorf("item %s content = %v, want [quiz]", item.Topic.ID, item.ContentTypes)
		}
		if item.EstimatedMinutes != 3 {
			t.Errorf("item %s minutes = %d, want 3", item.Topic.ID, item.EstimatedMinutes)
		}
	}
	if a.Mode != ModeSprint {
		t.Errorf("mode = %s, want sprint", a.Mode)
	}
	if a.DurationMinutes != 9 {
		t.Errorf("duration = %d, want 9", a.DurationMinutes)
	}
}

func TestBuildPYQSprint_CapsAtEight(t *testing.T) {
	var pool []store.TopicView
	for i := 0; i < 12; i++ {
		tv := topic(string(rune('a'+i)), 5, store.StatusSeen, 2)
		tv.TimesStudied = 1
		pool = append(pool, tv)
	}

	a, err := BuildPYQSprint(pool)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(a.Items) != 8 {
		t.Errorf("items = %d, want 8", len(a.Items))
	}
	if a.DurationMinutes != 24 {
		t.Errorf("duration = %d, want 24", a.DurationMinutes)
	}
}
