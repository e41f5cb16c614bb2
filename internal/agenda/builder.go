package agenda

import (
	"context"
	"errors"
	"fmt"

	"github.com/vgn96186/Guru-sub000/internal/guru"
	"github.com/vgn96186/Guru-sub000/internal/scoring"
	"github.com/vgn96186/Guru-sub000/internal/store"
)

// ErrNoTopics means the topic pool is empty. It is the only condition
// the builder cannot recover from.
var ErrNoTopics = errors.New("no topics to schedule")

const (
	candidateLimit     = 15
	forgivenessMinutes = 5
)

// Builder assembles study sessions. The planner is optional: when nil
// or failing, selection falls back to score order.
type Builder struct {
	planner guru.Planner
}

// NewBuilder creates a session builder.
func NewBuilder(planner guru.Planner) *Builder {
	return &Builder{planner: planner}
}

// Build produces one agenda. It never fails for planner or selection
// reasons; only an empty topic pool is an error.
func (b *Builder) Build(ctx context.Context, in BuildInput) (*Agenda, error) {
	if len(in.Topics) == 0 {
		return nil, ErrNoTopics
	}

	// A returning user gets one tiny, kind session. Nothing else runs.
	if in.DaysInactive >= 3 {
		return b.forgivenessAgenda(in), nil
	}

	mode, minutes := modeForMood(in.Mood, in.PreferredMinutes)

	ranked := scoring.Rank(in.Topics, in.Mood, in.Now)
	candidates := ranked
	if len(candidates) > candidateLimit {
		candidates = candidates[:candidateLimit]
	}

	selected, focusNote, message := b.selectTopics(ctx, candidates, mode, minutes, in)

	if len(selected) == 0 {
		selected = candidates[:1]
	}

	items := make([]Item, len(selected))
	perTopic := minutes / len(selected)
	for i, t := range selected {
		items[i] = Item{
			Topic:            t,
			ContentTypes:     contentTypesFor(t, mode, in),
			EstimatedMinutes: perTopic,
		}
	}

	return &Agenda{
		Items:           items,
		FocusNote:       focusNote,
		Message:         message,
		Mode:            mode,
		DurationMinutes: minutes,
	}, nil
}

// selectTopics asks the planner for a selection and falls back to score
// order on any failure. The fallback is deterministic: top N by score,
// skipping topics seen in the last three sessions when enough remain.
func (b *Builder) selectTopics(ctx context.Context, candidates []store.TopicView, mode Mode, minutes int, in BuildInput) ([]store.TopicView, string, string) {
	if b.planner != nil {
		req := guru.PlanRequest{
			Candidates:       toCandidates(candidates, in),
			DurationMinutes:  minutes,
			Mood:             string(in.Mood),
			RecentTopicNames: in.RecentTopicNames,
		}
		if result, err := b.planner.PlanSession(ctx, req); err == nil {
			byID := make(map[string]store.TopicView, len(candidates))
			for _, c := range candidates {
				byID[c.ID] = c
			}
			var selected []store.TopicView
			for _, id := range result.SelectedTopicIDs {
				if t, ok := byID[id]; ok {
					selected = append(selected, t)
				}
			}
			if len(selected) > 0 {
				return selected, result.FocusNote, result.GuruMessage
			}
		}
	}

	n := 2
	if mode == ModeSprint || mode == ModeGentle {
		n = 1
	}

	var fresh []store.TopicView
	for _, c := range candidates {
		if !in.RecentSessionTopicIDs[c.ID] {
			fresh = append(fresh, c)
		}
	}
	pool := fresh
	if len(pool) < n {
		pool = candidates
	}
	if len(pool) > n {
		pool = pool[:n]
	}

	selected := make([]store.TopicView, len(pool))
	copy(selected, pool)

	focus := "Work through your highest-priority topics."
	if len(selected) == 1 {
		focus = fmt.Sprintf("Today is about one thing: %s.", selected[0].Name)
	}
	return selected, focus, "Small steps, every day. Let's begin."
}

// contentTypesFor assigns material formats. Due topics are quiz-only so
// only a correct answer counts as a review; nemesis topics rotate
// through active-recall formats.
func contentTypesFor(t store.TopicView, mode Mode, in BuildInput) []ContentType {
	if t.DueSimple(in.Now) {
		return []ContentType{ContentQuiz}
	}
	if t.Nemesis {
		return []ContentType{nemesisRotation[t.WrongCount%len(nemesisRotation)]}
	}
	return defaultContentTypes(mode)
}

func defaultContentTypes(mode Mode) []ContentType {
	switch mode {
	case ModeSprint:
		return []ContentType{ContentQuiz, ContentFlashcards}
	case ModeGentle:
		return []ContentType{ContentVideo, ContentMnemonics}
	case ModeDeep:
		return []ContentType{ContentVideo, ContentNotes, ContentQuiz}
	default:
		return []ContentType{ContentNotes, ContentQuiz}
	}
}

// modeForMood maps mood to pacing: low-capacity moods get short gentle
// sessions, a distracted mind gets a ten-minute sprint.
func modeForMood(mood scoring.Mood, preferred int) (Mode, int) {
	switch mood {
	case scoring.MoodDistracted:
		return ModeSprint, 10
	case scoring.MoodStressed:
		return ModeGentle, 20
	case scoring.MoodTired:
		return ModeGentle, 30
	case scoring.MoodEnergetic:
		return ModeDeep, preferred
	default:
		return ModeNormal, preferred
	}
}

// forgivenessAgenda welcomes back a lapsed user with one familiar topic
// and the lightest material available.
func (b *Builder) forgivenessAgenda(in BuildInput) *Agenda {
	topic := in.Topics[0]
	for _, t := range in.Topics {
		if t.LastStudiedAt == nil {
			continue
		}
		if topic.LastStudiedAt == nil || t.LastStudiedAt.After(*topic.LastStudiedAt) {
			topic = t
		}
	}

	return &Agenda{
		Items: []Item{{
			Topic:            topic,
			ContentTypes:     []ContentType{ContentVideo},
			EstimatedMinutes: forgivenessMinutes,
		}},
		FocusNote:       "Just five minutes. That's the whole goal today.",
		Message:         "Welcome back. The break doesn't matter; showing up today does.",
		Mode:            ModeGentle,
		DurationMinutes: forgivenessMinutes,
	}
}

func toCandidates(topics []store.TopicView, in BuildInput) []guru.Candidate {
	out := make([]guru.Candidate, len(topics))
	for i, t := range topics {
		out[i] = guru.Candidate{
			ID:         t.ID,
			Name:       t.Name,
			Subject:    t.Subject,
			Score:      scoring.Score(t, in.Mood, in.Now),
			Status:     string(t.Status),
			Confidence: t.Confidence,
			Nemesis:    t.Nemesis,
			WrongCount: t.WrongCount,
		}
	}
	return out
}
