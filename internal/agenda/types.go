package agenda

import (
	"time"

	"github.com/vgn96186/Guru-sub000/internal/scoring"
	"github.com/vgn96186/Guru-sub000/internal/store"
)

// Mode is the pacing profile of a session.
type Mode string

const (
	ModeNormal   Mode = "normal"
	ModeSprint   Mode = "sprint"
	ModeGentle   Mode = "gentle"
	ModeDeep     Mode = "deep"
	ModeExternal Mode = "external"
)

// ContentType is a study-material format an agenda item can carry.
type ContentType string

const (
	ContentVideo      ContentType = "video"
	ContentNotes      ContentType = "notes"
	ContentQuiz       ContentType = "quiz"
	ContentFlashcards ContentType = "flashcards"
	ContentMnemonics  ContentType = "mnemonics"
	ContentErrorHunt  ContentType = "error_hunt"
	ContentDetective  ContentType = "detective"
	ContentTeachBack  ContentType = "teach_back"
)

// nemesisRotation is the active-recall formats cycled for nemesis
// topics, indexed by wrong-answer count so repeat encounters vary.
var nemesisRotation = []ContentType{ContentErrorHunt, ContentDetective, ContentTeachBack}

// Agenda is the plan for one study session. Built once, consumed by the
// study flow, never persisted.
type Agenda struct {
	Items           []Item
	FocusNote       string
	Message         string
	Mode            Mode
	DurationMinutes int
}

// Item is one topic on the agenda with its assigned material formats.
type Item struct {
	Topic            store.TopicView
	ContentTypes     []ContentType
	EstimatedMinutes int
}

// BuildInput carries everything the builder needs, so building is a
// pure function over explicit inputs rather than ambient state.
type BuildInput struct {
	// Topics is the full pool with progress attached.
	Topics []store.TopicView

	Mood scoring.Mood

	// PreferredMinutes is the user's preferred session length; moods
	// may shorten it.
	PreferredMinutes int

	// DaysInactive is whole days since the user last studied.
	DaysInactive int

	// RecentTopicNames are names studied in the last few sessions,
	// passed to the planner to avoid repetition.
	RecentTopicNames []string

	// RecentSessionTopicIDs are topic IDs planned in the last three
	// sessions, used by the deterministic fallback.
	RecentSessionTopicIDs map[string]bool

	Now time.Time
}
