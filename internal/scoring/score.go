// Package scoring ranks topics for session planning. The score is an
// additive linear function with hand-tuned weights, kept deliberately
// simple and auditable. The due and nemesis bonuses are sized to dominate
// the ranking, so overrides are expressed as soft scores that behave like
// hard constraints.
package scoring

import (
	"sort"
	"time"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// Mood is the user's self-reported state going into a session.
type Mood string

const (
	MoodFocused    Mood = "focused"
	MoodTired      Mood = "tired"
	MoodStressed   Mood = "stressed"
	MoodDistracted Mood = "distracted"
	MoodEnergetic  Mood = "energetic"
)

const (
	dueBonus        = 16.0
	firstWatchBonus = 10.0
	nemesisBonus    = 50.0
)

// Score computes the priority score for one topic given the current mood.
// Pure function, no side effects; ties are broken by Rank's stable sort.
func Score(t store.TopicView, mood Mood, now time.Time) float64 {
	score := float64(t.Priority) * 1.5
	score += statusBonus(t.Status)
	score += float64(5-t.Confidence) * 2

	if t.DueSimple(now) {
		score += dueBonus
	}

	if t.Status == store.StatusSeen && t.Confidence <= 1 && t.TimesStudied <= 1 {
		score += firstWatchBonus
	}

	if t.Nemesis {
		score += nemesisBonus
	}

	score -= recencyPenalty(t, now)
	score += moodAdjustment(t, mood)

	return score
}

// Rank sorts topics by descending score. The sort is stable so equal
// scores keep their input order.
func Rank(topics []store.TopicView, mood Mood, now time.Time) []store.TopicView {
	ranked := make([]store.TopicView, len(topics))
	copy(ranked, topics)
	sort.SliceStable(ranked, func(i, j int) bool {
		return Score(ranked[i], mood, now) > Score(ranked[j], mood, now)
	})
	return ranked
}

func statusBonus(status store.TopicStatus) float64 {
	switch status {
	case store.StatusUnseen:
		return 10
	case store.StatusSeen:
		return 6
	case store.StatusReviewed:
		return 3
	default:
		return 0
	}
}

// recencyPenalty suppresses topics studied very recently. Nemesis topics
// use a shorter 12h window with a steeper penalty so they resurface
// faster despite their dominant bonus.
func recencyPenalty(t store.TopicView, now time.Time) float64 {
	if t.LastStudiedAt == nil {
		return 0
	}
	since := now.Sub(*t.LastStudiedAt)

	if t.Nemesis {
		if since < 12*time.Hour {
			return 30
		}
		return 0
	}

	switch {
	case since < 24*time.Hour:
		return 20
	case since < 48*time.Hour:
		return 10
	default:
		return 0
	}
}

// moodAdjustment nudges topic selection toward the user's capacity: low
// moods avoid new cognitive load and offer easy wins, high energy leans
// into new and high-yield material.
func moodAdjustment(t store.TopicView, mood Mood) float64 {
	var adj float64
	switch mood {
	case MoodTired, MoodStressed:
		if t.Status == store.StatusUnseen {
			adj -= 10
		}
		if t.Status == store.StatusMastered {
			adj += 5
		}
	case MoodEnergetic:
		if t.Status == store.StatusUnseen {
			adj += 5
		}
		if t.Priority >= 8 {
			adj += 5
		}
	}
	return adj
}
