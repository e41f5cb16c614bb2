package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// TopicRepo provides access to the topic catalog.
type TopicRepo interface {
	// Get returns a single topic by ID.
	Get(ctx context.Context, id string) (*Topic, error)

	// ListWithProgress returns every topic joined with its progress row,
	// ordered by subject then name for stable downstream sorts.
	ListWithProgress(ctx context.Context) ([]TopicView, error)

	// Seed replaces the topic catalog. Existing progress rows are kept;
	// missing progress rows are created as unseen.
	Seed(ctx context.Context, topics []Topic) error

	// Count returns the number of topics.
	Count(ctx context.Context) (int, error)
}

type topicRepo struct {
	db *sqlx.DB
}

func (r *topicRepo) Get(ctx context.Context, id string) (*Topic, error) {
	var t Topic
	err := r.db.GetContext(ctx, &t, `SELECT * FROM topics WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("topic %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return &t, nil
}

func (r *topicRepo) ListWithProgress(ctx context.Context) ([]TopicView, error) {
	var views []TopicView
	err := r.db.SelectContext(ctx, &views, `
		SELECT t.*, p.*
		FROM topics t
		JOIN topic_progress p ON p.topic_id = t.id
		ORDER BY t.subject, t.name`)
	if err != nil {
		return nil, fmt.Errorf("list topics with progress: %w", err)
	}
	return views, nil
}

func (r *topicRepo) Seed(ctx context.Context, topics []Topic) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, t := range topics {
		if t.Priority < 1 || t.Priority > 10 {
			return fmt.Errorf("topic %q: priority %d out of range [1,10]", t.ID, t.Priority)
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO topics (id, subject, name, parent_id, estimated_minutes, priority)
			VALUES (?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				subject = excluded.subject,
				name = excluded.name,
				parent_id = excluded.parent_id,
				estimated_minutes = excluded.estimated_minutes,
				priority = excluded.priority`,
			t.ID, t.Subject, t.Name, t.ParentID, t.EstimatedMinutes, t.Priority)
		if err != nil {
			return fmt.Errorf("seed topic %q: %w", t.ID, err)
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO topic_progress (topic_id) VALUES (?)
			ON CONFLICT(topic_id) DO NOTHING`, t.ID)
		if err != nil {
			return fmt.Errorf("seed progress %q: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed: %w", err)
	}
	return nil
}

func (r *topicRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM topics`); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return n, nil
}
