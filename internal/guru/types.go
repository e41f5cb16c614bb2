package guru

// Candidate is one scored topic offered to the planner.
type Candidate struct {
	ID         string
	Name       string
	Subject    string
	Score      float64
	Status     string
	Confidence int
	Nemesis    bool
	WrongCount int
}

// PlanRequest describes one session-planning call.
type PlanRequest struct {
	// Candidates are ranked topics, best first. The planner may only
	// select from this set.
	Candidates []Candidate

	// DurationMinutes is how long the student wants to study.
	DurationMinutes int

	// Mood is the student's self-reported mood.
	Mood string

	// RecentTopicNames are topics studied in the last few sessions,
	// offered so the plan can avoid repetition.
	RecentTopicNames []string
}

// PlanResult is the planner's selection.
type PlanResult struct {
	// SelectedTopicIDs are the chosen topics, in study order. Every ID
	// is guaranteed to come from the request's candidate set.
	SelectedTopicIDs []string

	// FocusNote is a one-line study focus for the session.
	FocusNote string

	// GuruMessage is a short motivational message for the student.
	GuruMessage string
}

// ContentRequest asks for study material on one topic.
type ContentRequest struct {
	TopicID   string
	TopicName string
	Subject   string

	// Kind is the material format, e.g. "mnemonics" or "quiz".
	Kind string

	// Confidence is the student's current confidence on the topic, 0-5.
	Confidence int
}

// Content is generated study material.
type Content struct {
	TopicID string
	Kind    string
	Title   string
	Body    string
}

// Config tunes generation calls.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}
