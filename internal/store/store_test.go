package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedTopics(t *testing.T, s *Store, topics ...Topic) {
	t.Helper()
	require.NoError(t, s.Topics().Seed(context.Background(), topics))
}

func testTopic(id string) Topic {
	return Topic{
		ID:               id,
		Subject:          "Pharmacology",
		Name:             "Topic " + id,
		EstimatedMinutes: 30,
		Priority:         5,
	}
}

func TestSeed_CreatesProgressRows(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopics(t, s, testTopic("t1"), testTopic("t2"))

	views, err := s.Topics().ListWithProgress(ctx)
	require.NoError(t, err)
	require.Len(t, views, 2)
	for _, v := range views {
		require.Equal(t, StatusUnseen, v.Status)
		require.False(t, v.HasCard())
	}
}

func TestSeed_Reseed_KeepsProgress(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopics(t, s, testTopic("t1"))

	p, err := s.Progress().Get(ctx, "t1")
	require.NoError(t, err)
	p.Status = StatusReviewed
	p.Confidence = 3
	require.NoError(t, s.Progress().Upsert(ctx, p))

	// Re-seeding the same topic must not reset its progress.
	updated := testTopic("t1")
	updated.Priority = 9
	seedTopics(t, s, updated)

	p, err = s.Progress().Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, StatusReviewed, p.Status)

	topic, err := s.Topics().Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, 9, topic.Priority)
}

func TestGet_UnknownTopic(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Topics().Get(context.Background(), "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProgress_UpsertRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopics(t, s, testTopic("t1"))

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 7)
	p := &TopicProgress{
		TopicID:        "t1",
		Status:         StatusReviewed,
		Confidence:     3,
		LastStudiedAt:  &now,
		TimesStudied:   4,
		XPEarned:       120,
		NextReviewDate: &due,
		Nemesis:        true,
		WrongCount:     5,
		FSRSDue:        &due,
		Stability:      4.2,
		Difficulty:     6.1,
		Reps:           4,
		Lapses:         1,
		FSRSState:      2,
		LastReview:     &now,
	}
	require.NoError(t, s.Progress().Upsert(ctx, p))

	got, err := s.Progress().Get(ctx, "t1")
	require.NoError(t, err)
	require.Equal(t, StatusReviewed, got.Status)
	require.True(t, got.Nemesis)
	require.Equal(t, 5, got.WrongCount)
	require.True(t, got.HasCard())
	require.InDelta(t, 4.2, got.Stability, 1e-9)
	require.True(t, got.DueSimple(due))
	require.False(t, got.DueSimple(now))
}

func TestDueForReview_OrdersByFragility(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopics(t, s, testTopic("fragile"), testTopic("stable"), testTopic("future"))

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 3)

	for id, stability := range map[string]float64{"fragile": 1.5, "stable": 20} {
		p, err := s.Progress().Get(ctx, id)
		require.NoError(t, err)
		p.NextReviewDate = &past
		p.FSRSDue = &past
		p.Stability = stability
		require.NoError(t, s.Progress().Upsert(ctx, p))
	}
	p, err := s.Progress().Get(ctx, "future")
	require.NoError(t, err)
	p.NextReviewDate = &future
	require.NoError(t, s.Progress().Upsert(ctx, p))

	due, err := s.Progress().DueForReview(ctx, 10, now)
	require.NoError(t, err)
	require.Len(t, due, 2)
	require.Equal(t, "fragile", due[0].ID)
	require.Equal(t, "stable", due[1].ID)
}

func TestWeakest_ExcludesUnseen(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	seedTopics(t, s, testTopic("weak"), testTopic("unseen"))

	p, err := s.Progress().Get(ctx, "weak")
	require.NoError(t, err)
	p.Status = StatusSeen
	p.Confidence = 1
	require.NoError(t, s.Progress().Upsert(ctx, p))

	weak, err := s.Progress().Weakest(ctx, 5)
	require.NoError(t, err)
	require.Len(t, weak, 1)
	require.Equal(t, "weak", weak[0].ID)
}

func TestSessions_CreateFinishAndRecentTopics(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	start := time.Date(2026, 2, 1, 21, 0, 0, 0, time.UTC)
	id, err := s.Sessions().Create(ctx, "focused", "normal", []string{"t1", "t2"}, start)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	end := start.Add(25 * time.Minute)
	require.NoError(t, s.Sessions().Finish(ctx, id, []string{"t1"}, 40, end))

	recent, err := s.Sessions().RecentTopicIDs(ctx, 3)
	require.NoError(t, err)
	require.True(t, recent["t1"])
	require.True(t, recent["t2"])
	require.False(t, recent["t3"])
}

func TestSessions_FinishUnknown(t *testing.T) {
	s := openTestStore(t)
	err := s.Sessions().Finish(context.Background(), "missing", nil, 0, time.Now())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestPreferredStudyHours_TooFewSamples(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, err := s.Sessions().Create(ctx, "focused", "normal", nil, time.Now())
	require.NoError(t, err)

	_, ok, err := s.Sessions().PreferredStudyHours(ctx, 3)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestProfile_DefaultsAndUpdate(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	p, err := s.Profile().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 120, p.DailyGoalMinutes)

	exam := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	p.ExamDate = &exam
	p.StreakDays = 4
	require.NoError(t, s.Profile().Update(ctx, p))

	p, err = s.Profile().Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, p.StreakDays)
	require.NotNil(t, p.ExamDate)
}

func TestProfile_DaysInactive(t *testing.T) {
	now := time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

	p := &Profile{}
	if got := p.DaysInactive(now); got != 0 {
		t.Errorf("DaysInactive with no history = %d, want 0", got)
	}

	last := now.Add(-80 * time.Hour)
	p.LastActiveAt = &last
	if got := p.DaysInactive(now); got != 3 {
		t.Errorf("DaysInactive = %d, want 3", got)
	}
}
