package agenda

import (
	"sort"

	"github.com/vgn96186/Guru-sub000/internal/store"
)

const (
	sprintTopicLimit      = 8
	sprintMinutesPerTopic = 3
)

// BuildPYQSprint assembles a timed previous-year-question drill. It is
// fully deterministic: no scoring, no planner, quiz-only. Topics the
// student has already studied come first, ordered by exam priority.
func BuildPYQSprint(topics []store.TopicView) (*Agenda, error) {
	if len(topics) == 0 {
		return nil, ErrNoTopics
	}

	sorted := make([]store.TopicView, len(topics))
	copy(sorted, topics)
	sort.SliceStable(sorted, func(i, j int) bool {
		si, sj := sorted[i].TimesStudied > 0, sorted[j].TimesStudied > 0
		if si != sj {
			return si
		}
		return sorted[i].Priority > sorted[j].Priority
	})

	if len(sorted) > sprintTopicLimit {
		sorted = sorted[:sprintTopicLimit]
	}

	items := make([]Item, len(sorted))
	for i, t := range sorted {
		items[i] = Item{
			Topic:            t,
			ContentTypes:     []ContentType{ContentQuiz},
			EstimatedMinutes: sprintMinutesPerTopic,
		}
	}

	return &Agenda{
		Items:           items,
		FocusNote:       "Rapid fire. Answer fast, mark anything shaky for later.",
		Message:         "PYQ sprint: no notes, no videos, just questions.",
		Mode:            ModeSprint,
		DurationMinutes: len(items) * sprintMinutesPerTopic,
	}, nil
}
