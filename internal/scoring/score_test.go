package scoring

import (
	"testing"
	"time"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

var testNow = time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)

func view(id string, status store.TopicStatus, confidence, priority int) store.TopicView {
	return store.TopicView{
		Topic: store.Topic{ID: id, Subject: "Medicine", Name: id, Priority: priority, EstimatedMinutes: 30},
		TopicProgress: store.TopicProgress{
			TopicID:    id,
			Status:     status,
			Confidence: confidence,
		},
	}
}

func allMoods() []Mood {
	return []Mood{MoodFocused, MoodTired, MoodStressed, MoodDistracted, MoodEnergetic}
}

func TestScore_BaseTerms(t *testing.T) {
	v := view("t", store.StatusUnseen, 0, 5)
	// base 7.5 + unseen 10 + confidence gap 10
	if got := Score(v, MoodFocused, testNow); got != 27.5 {
		t.Errorf("Score = %v, want 27.5", got)
	}
}

func TestScore_DueBonus(t *testing.T) {
	due := view("due", store.StatusReviewed, 3, 5)
	past := testNow.AddDate(0, 0, -1)
	due.NextReviewDate = &past

	notDue := view("notdue", store.StatusReviewed, 3, 5)
	future := testNow.AddDate(0, 0, 2)
	notDue.NextReviewDate = &future

	diff := Score(due, MoodFocused, testNow) - Score(notDue, MoodFocused, testNow)
	if diff != 16 {
		t.Errorf("due bonus = %v, want 16", diff)
	}
}

func TestScore_FirstWatchBonus(t *testing.T) {
	fresh := view("fresh", store.StatusSeen, 1, 5)
	fresh.TimesStudied = 1

	veteran := view("vet", store.StatusSeen, 1, 5)
	veteran.TimesStudied = 4

	diff := Score(fresh, MoodFocused, testNow) - Score(veteran, MoodFocused, testNow)
	if diff != 10 {
		t.Errorf("first-watch bonus = %v, want 10", diff)
	}
}

func TestScore_NemesisDominates(t *testing.T) {
	// A nemesis topic and a due topic must both outrank any topic that is
	// neither due, nemesis, nor unseen, for every mood.
	nemesis := view("nemesis", store.StatusSeen, 2, 5)
	nemesis.Nemesis = true

	due := view("due", store.StatusReviewed, 3, 5)
	past := testNow.AddDate(0, 0, -1)
	due.NextReviewDate = &past

	ordinary := view("ordinary", store.StatusMastered, 4, 10)

	for _, mood := range allMoods() {
		if Score(nemesis, mood, testNow) <= Score(ordinary, mood, testNow) {
			t.Errorf("mood %s: nemesis %v did not outrank ordinary %v",
				mood, Score(nemesis, mood, testNow), Score(ordinary, mood, testNow))
		}
		if Score(due, mood, testNow) <= Score(ordinary, mood, testNow) {
			t.Errorf("mood %s: due %v did not outrank ordinary %v",
				mood, Score(due, mood, testNow), Score(ordinary, mood, testNow))
		}
	}
}

func TestScore_RecencySuppression(t *testing.T) {
	fresh := view("t", store.StatusReviewed, 3, 5)
	studied := fresh
	hourAgo := testNow.Add(-time.Hour)
	studied.LastStudiedAt = &hourAgo

	diff := Score(fresh, MoodFocused, testNow) - Score(studied, MoodFocused, testNow)
	if diff < 20 {
		t.Errorf("recency suppression = %v, want >= 20", diff)
	}
}

func TestScore_RecencySuppression_Nemesis(t *testing.T) {
	fresh := view("t", store.StatusSeen, 1, 5)
	fresh.Nemesis = true
	studied := fresh
	hourAgo := testNow.Add(-time.Hour)
	studied.LastStudiedAt = &hourAgo

	diff := Score(fresh, MoodFocused, testNow) - Score(studied, MoodFocused, testNow)
	if diff < 10 {
		t.Errorf("nemesis recency suppression = %v, want >= 10", diff)
	}

	// Outside the 12h window the nemesis penalty is gone entirely.
	old := fresh
	thirteenHoursAgo := testNow.Add(-13 * time.Hour)
	old.LastStudiedAt = &thirteenHoursAgo
	if Score(old, MoodFocused, testNow) != Score(fresh, MoodFocused, testNow) {
		t.Error("nemesis penalty applied outside 12h window")
	}
}

func TestScore_RecencyWindows(t *testing.T) {
	base := view("t", store.StatusReviewed, 3, 5)

	at := func(d time.Duration) float64 {
		v := base
		ts := testNow.Add(-d)
		v.LastStudiedAt = &ts
		return Score(v, MoodFocused, testNow)
	}

	unstudied := Score(base, MoodFocused, testNow)
	if got := unstudied - at(6*time.Hour); got != 20 {
		t.Errorf("penalty within 24h = %v, want 20", got)
	}
	if got := unstudied - at(36*time.Hour); got != 10 {
		t.Errorf("penalty within 48h = %v, want 10", got)
	}
	if got := unstudied - at(72*time.Hour); got != 0 {
		t.Errorf("penalty beyond 48h = %v, want 0", got)
	}
}

func TestScore_MoodAdjustments(t *testing.T) {
	unseen := view("u", store.StatusUnseen, 0, 5)
	mastered := view("m", store.StatusMastered, 5, 5)
	highYield := view("h", store.StatusReviewed, 3, 9)

	base := Score(unseen, MoodFocused, testNow)
	if got := Score(unseen, MoodTired, testNow); got != base-10 {
		t.Errorf("tired unseen = %v, want %v", got, base-10)
	}
	if got := Score(unseen, MoodStressed, testNow); got != base-10 {
		t.Errorf("stressed unseen = %v, want %v", got, base-10)
	}
	if got := Score(unseen, MoodEnergetic, testNow); got != base+5 {
		t.Errorf("energetic unseen = %v, want %v", got, base+5)
	}

	if got := Score(mastered, MoodTired, testNow) - Score(mastered, MoodFocused, testNow); got != 5 {
		t.Errorf("tired mastered bonus = %v, want 5", got)
	}
	if got := Score(highYield, MoodEnergetic, testNow) - Score(highYield, MoodFocused, testNow); got != 5 {
		t.Errorf("energetic high-priority bonus = %v, want 5", got)
	}
}

func TestRank_StableOnTies(t *testing.T) {
	a := view("a", store.StatusReviewed, 3, 5)
	b := view("b", store.StatusReviewed, 3, 5)
	top := view("top", store.StatusUnseen, 0, 10)

	ranked := Rank([]store.TopicView{a, b, top}, MoodFocused, testNow)
	if ranked[0].ID != "top" {
		t.Errorf("ranked[0] = %s, want top", ranked[0].ID)
	}
	if ranked[1].ID != "a" || ranked[2].ID != "b" {
		t.Errorf("tie order not preserved: %s, %s", ranked[1].ID, ranked[2].ID)
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	a := view("a", store.StatusReviewed, 3, 1)
	b := view("b", store.StatusUnseen, 0, 10)
	in := []store.TopicView{a, b}
	Rank(in, MoodFocused, testNow)
	if in[0].ID != "a" {
		t.Error("Rank mutated its input slice")
	}
}
