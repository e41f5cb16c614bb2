package store

import "time"

// TopicStatus is the coarse progress state of a topic. It moves forward
// with good recall and can be pushed back down by poor recall.
type TopicStatus string

const (
	StatusUnseen   TopicStatus = "unseen"
	StatusSeen     TopicStatus = "seen"
	StatusReviewed TopicStatus = "reviewed"
	StatusMastered TopicStatus = "mastered"
)

// Topic is a unit of study content. Immutable after seeding.
type Topic struct {
	ID               string  `db:"id" json:"id"`
	Subject          string  `db:"subject" json:"subject"`
	Name             string  `db:"name" json:"name"`
	ParentID         *string `db:"parent_id" json:"parent_id,omitempty"`
	EstimatedMinutes int     `db:"estimated_minutes" json:"estimated_minutes"`
	Priority         int     `db:"priority" json:"priority"`
}

// TopicProgress is the per-topic review history, one row per topic.
//
// The simple-scheduler NextReviewDate and the FSRS card coexist: the
// simple date is the calendar-facing due date (scorer, quiz forcing,
// simulator backlog); the FSRS card is the memory model behind the due
// queue ordering. Both are written only by scheduler.Service.
//
// The FSRS fields are either all-empty (never reviewed) or all-populated;
// FSRSDue is the presence marker.
type TopicProgress struct {
	TopicID       string      `db:"topic_id"`
	Status        TopicStatus `db:"status"`
	Confidence    int         `db:"confidence"`
	LastStudiedAt *time.Time  `db:"last_studied_at"`
	TimesStudied  int         `db:"times_studied"`
	XPEarned      int         `db:"xp_earned"`

	NextReviewDate *time.Time `db:"next_review_date"`

	// Nemesis state is derived externally; this subsystem only reads it.
	Nemesis    bool `db:"nemesis"`
	WrongCount int  `db:"wrong_count"`

	FSRSDue       *time.Time `db:"fsrs_due"`
	Stability     float64    `db:"stability"`
	Difficulty    float64    `db:"difficulty"`
	ElapsedDays   int64      `db:"elapsed_days"`
	ScheduledDays int64      `db:"scheduled_days"`
	Reps          int64      `db:"reps"`
	Lapses        int64      `db:"lapses"`
	FSRSState     int        `db:"fsrs_state"`
	LastReview    *time.Time `db:"last_review"`
}

// HasCard reports whether the topic has ever been reviewed under FSRS.
func (p *TopicProgress) HasCard() bool {
	return p.FSRSDue != nil
}

// DueSimple reports whether the simple-scheduler review date has arrived.
func (p *TopicProgress) DueSimple(now time.Time) bool {
	return p.NextReviewDate != nil && !now.Before(*p.NextReviewDate)
}

// TopicView joins a topic with its progress row. This is the unit the
// scorer, session builder, and plan simulator operate on.
type TopicView struct {
	Topic
	TopicProgress
}

// Session is one planning+execution record. Created at session start,
// finished once at session end.
type Session struct {
	ID              string     `db:"id"`
	Mood            string     `db:"mood"`
	Mode            string     `db:"mode"`
	PlannedTopics   string     `db:"planned_topics"`   // JSON array of topic IDs
	CompletedTopics string     `db:"completed_topics"` // JSON array of topic IDs
	StartedAt       time.Time  `db:"started_at"`
	EndedAt         *time.Time `db:"ended_at"`
	XPEarned        int        `db:"xp_earned"`
	DurationMinutes int        `db:"duration_minutes"`
}

// Profile holds the single user's study settings and streak.
type Profile struct {
	ID                      int        `db:"id"`
	DailyGoalMinutes        int        `db:"daily_goal_minutes"`
	PreferredSessionMinutes int        `db:"preferred_session_minutes"`
	ExamDate                *time.Time `db:"exam_date"`
	StreakDays              int        `db:"streak_days"`
	LastActiveAt            *time.Time `db:"last_active_at"`
}

// DaysInactive returns whole days since the user was last active.
// Returns 0 when the user has never been active (fresh install is not
// treated as an absence).
func (p *Profile) DaysInactive(now time.Time) int {
	if p.LastActiveAt == nil {
		return 0
	}
	d := int(now.Sub(*p.LastActiveAt).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
