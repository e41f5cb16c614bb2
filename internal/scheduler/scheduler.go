package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs"

	"github.com/vgn96186/Guru-sub000/internal/store"
	"github.com/vgn96186/Guru-sub000/internal/xp"
)

// Result is the outcome of recording one review.
type Result struct {
	TopicID        string
	Status         store.TopicStatus
	Confidence     int
	NextReviewDate time.Time
	Card           fsrs.Card
	XPAwarded      int
}

// Service owns the per-topic spaced repetition state machine. It is the
// only writer of review state: both the simple-interval date and the FSRS
// card are updated here, in one upsert, so the two tracks cannot drift
// through divergent call sites.
type Service struct {
	progress store.ProgressRepo
	params   fsrs.Parameters
}

// NewService creates a review scheduler with default FSRS parameters.
func NewService(progress store.ProgressRepo) *Service {
	return &Service{
		progress: progress,
		params:   fsrs.DefaultParam(),
	}
}

// RecordReview records a recall-quality rating for a topic and computes
// the next due dates. Confidence outside [0,5] is clamped. A topic with
// no prior review history is treated as a freshly initialized card.
func (s *Service) RecordReview(ctx context.Context, topicID string, confidence int, now time.Time) (*Result, error) {
	confidence = ClampConfidence(confidence)

	p, err := s.progress.Get(ctx, topicID)
	if errors.Is(err, store.ErrNotFound) {
		p = &store.TopicProgress{TopicID: topicID, Status: store.StatusUnseen}
	} else if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}

	card := cardFromProgress(p)
	rating := RatingForConfidence(confidence)
	updated := s.params.Repeat(card, now)[rating].Card

	nextReview := now.AddDate(0, 0, IntervalDays(confidence))
	awarded := xp.ReviewXP(confidence)

	p.Status = StatusForConfidence(confidence)
	p.Confidence = confidence
	p.LastStudiedAt = &now
	p.TimesStudied++
	p.XPEarned += awarded
	p.NextReviewDate = &nextReview
	applyCard(p, updated)

	if err := s.progress.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("persist review: %w", err)
	}

	return &Result{
		TopicID:        topicID,
		Status:         p.Status,
		Confidence:     confidence,
		NextReviewDate: nextReview,
		Card:           updated,
		XPAwarded:      awarded,
	}, nil
}

// PreviewCard runs the FSRS scheduling step without persisting, returning
// the card that would result from each confidence band. Used by the stats
// view to show projected intervals.
func (s *Service) PreviewCard(p *store.TopicProgress, now time.Time) map[fsrs.Rating]fsrs.Card {
	log := s.params.Repeat(cardFromProgress(p), now)
	out := make(map[fsrs.Rating]fsrs.Card, len(log))
	for rating, info := range log {
		out[rating] = info.Card
	}
	return out
}
