package scheduler

import (
	fsrs "github.com/open-spaced-repetition/go-fsrs"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

// cardFromProgress reconstructs the FSRS card from a progress row.
// A topic that has never been reviewed always yields the same fresh
// card baseline, regardless of call order.
func cardFromProgress(p *store.TopicProgress) fsrs.Card {
	if !p.HasCard() {
		return fsrs.NewCard()
	}

	card := fsrs.Card{
		Due:           *p.FSRSDue,
		Stability:     p.Stability,
		Difficulty:    p.Difficulty,
		ElapsedDays:   uint64(p.ElapsedDays),
		ScheduledDays: uint64(p.ScheduledDays),
		Reps:          uint64(p.Reps),
		Lapses:        uint64(p.Lapses),
		State:         fsrs.State(p.FSRSState),
	}
	if p.LastReview != nil {
		card.LastReview = *p.LastReview
	}
	return card
}

// applyCard writes the updated FSRS card back onto the progress row,
// keeping the all-populated invariant.
func applyCard(p *store.TopicProgress, card fsrs.Card) {
	due := card.Due
	last := card.LastReview
	p.FSRSDue = &due
	p.Stability = card.Stability
	p.Difficulty = card.Difficulty
	p.ElapsedDays = int64(card.ElapsedDays)
	p.ScheduledDays = int64(card.ScheduledDays)
	p.Reps = int64(card.Reps)
	p.Lapses = int64(card.Lapses)
	p.FSRSState = int(card.State)
	p.LastReview = &last
}
