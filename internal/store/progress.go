package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ProgressRepo provides access to per-topic review history. Every mutation
// is a single upsert keyed by topic ID; there is only ever one writer.
type ProgressRepo interface {
	// Get returns the progress row for a topic.
	Get(ctx context.Context, topicID string) (*TopicProgress, error)

	// Upsert writes the full progress row for a topic.
	Upsert(ctx context.Context, p *TopicProgress) error

	// DueForReview returns topics whose simple-scheduler review date has
	// arrived, most fragile first (FSRS stability ascending, then most
	// overdue).
	DueForReview(ctx context.Context, limit int, now time.Time) ([]TopicView, error)

	// Weakest returns seen-or-worse topics with the lowest confidence.
	Weakest(ctx context.Context, limit int) ([]TopicView, error)

	// RecentlyStudiedNames returns the names of the n most recently
	// studied topics.
	RecentlyStudiedNames(ctx context.Context, n int) ([]string, error)
}

type progressRepo struct {
	db *sqlx.DB
}

func (r *progressRepo) Get(ctx context.Context, topicID string) (*TopicProgress, error) {
	var p TopicProgress
	err := r.db.GetContext(ctx, &p, `SELECT * FROM topic_progress WHERE topic_id = ?`, topicID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("progress for topic %q: %w", topicID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	return &p, nil
}

func (r *progressRepo) Upsert(ctx context.Context, p *TopicProgress) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO topic_progress (
			topic_id, status, confidence, last_studied_at, times_studied,
			xp_earned, next_review_date, nemesis, wrong_count,
			fsrs_due, stability, difficulty, elapsed_days, scheduled_days,
			reps, lapses, fsrs_state, last_review
		) VALUES (
			:topic_id, :status, :confidence, :last_studied_at, :times_studied,
			:xp_earned, :next_review_date, :nemesis, :wrong_count,
			:fsrs_due, :stability, :difficulty, :elapsed_days, :scheduled_days,
			:reps, :lapses, :fsrs_state, :last_review
		)
		ON CONFLICT(topic_id) DO UPDATE SET
			status = excluded.status,
			confidence = excluded.confidence,
			last_studied_at = excluded.last_studied_at,
			times_studied = excluded.times_studied,
			xp_earned = excluded.xp_earned,
			next_review_date = excluded.next_review_date,
			nemesis = excluded.nemesis,
			wrong_count = excluded.wrong_count,
			fsrs_due = excluded.fsrs_due,
			stability = excluded.stability,
			difficulty = excluded.difficulty,
			elapsed_days = excluded.elapsed_days,
			scheduled_days = excluded.scheduled_days,
			reps = excluded.reps,
			lapses = excluded.lapses,
			fsrs_state = excluded.fsrs_state,
			last_review = excluded.last_review`, p)
	if err != nil {
		return fmt.Errorf("upsert progress %q: %w", p.TopicID, err)
	}
	return nil
}

func (r *progressRepo) DueForReview(ctx context.Context, limit int, now time.Time) ([]TopicView, error) {
	var views []TopicView
	err := r.db.SelectContext(ctx, &views, `
		SELECT t.*, p.*
		FROM topics t
		JOIN topic_progress p ON p.topic_id = t.id
		WHERE p.next_review_date IS NOT NULL AND p.next_review_date <= ?
		ORDER BY p.stability ASC, p.next_review_date ASC
		LIMIT ?`, now, limit)
	if err != nil {
		return nil, fmt.Errorf("due for review: %w", err)
	}
	return views, nil
}

func (r *progressRepo) Weakest(ctx context.Context, limit int) ([]TopicView, error) {
	var views []TopicView
	err := r.db.SelectContext(ctx, &views, `
		SELECT t.*, p.*
		FROM topics t
		JOIN topic_progress p ON p.topic_id = t.id
		WHERE p.status != 'unseen'
		ORDER BY p.confidence ASC, p.wrong_count DESC, t.priority DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("weakest topics: %w", err)
	}
	return views, nil
}

func (r *progressRepo) RecentlyStudiedNames(ctx context.Context, n int) ([]string, error) {
	var names []string
	err := r.db.SelectContext(ctx, &names, `
		SELECT t.name
		FROM topics t
		JOIN topic_progress p ON p.topic_id = t.id
		WHERE p.last_studied_at IS NOT NULL
		ORDER BY p.last_studied_at DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recently studied names: %w", err)
	}
	return names, nil
}
