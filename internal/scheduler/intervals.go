package scheduler

import (
	fsrs "github.com/open-spaced-repetition/go-fsrs"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// ReviewIntervals maps a clamped confidence rating (0-5) to the
// simple-scheduler day offset until the next review.
var ReviewIntervals = []int{1, 1, 3, 7, 14, 21}

// ClampConfidence clamps a confidence rating into [0,5]. Out-of-range
// input is clamped, never rejected.
func ClampConfidence(confidence int) int {
	if confidence < 0 {
		return 0
	}
	if confidence > 5 {
		return 5
	}
	return confidence
}

// IntervalDays returns the simple-scheduler interval for a confidence rating.
func IntervalDays(confidence int) int {
	return ReviewIntervals[ClampConfidence(confidence)]
}

// StatusForConfidence derives the topic status from a recall rating.
// This is the single place the mapping lives; every call site that
// records a review outcome goes through it.
func StatusForConfidence(confidence int) store.TopicStatus {
	switch c := ClampConfidence(confidence); {
	case c >= 4:
		return store.StatusMastered
	case c >= 2:
		return store.StatusReviewed
	default:
		return store.StatusSeen
	}
}

// RatingForConfidence maps the 0-5 confidence scale onto the four FSRS
// recall ratings.
func RatingForConfidence(confidence int) fsrs.Rating {
	switch c := ClampConfidence(confidence); {
	case c <= 2:
		return fsrs.Again
	case c == 3:
		return fsrs.Hard
	case c == 4:
		return fsrs.Good
	default:
		return fsrs.Easy
	}
}
