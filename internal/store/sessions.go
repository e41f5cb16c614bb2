package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// SessionRepo provides access to session records.
type SessionRepo interface {
	// Create starts a new session and returns its ID.
	Create(ctx context.Context, mood, mode string, plannedTopicIDs []string, startedAt time.Time) (string, error)

	// Finish records the session outcome. Sessions are append-only in
	// practice: Finish is the single mutation after Create.
	Finish(ctx context.Context, id string, completedTopicIDs []string, xpEarned int, endedAt time.Time) error

	// RecentTopicIDs returns the union of planned topic IDs from the n
	// most recent sessions.
	RecentTopicIDs(ctx context.Context, n int) (map[string]bool, error)

	// PreferredStudyHours returns the user's three most frequent session
	// start hours, or ok=false when fewer than minSamples sessions exist.
	PreferredStudyHours(ctx context.Context, minSamples int) (hours []int, ok bool, err error)
}

type sessionRepo struct {
	db *sqlx.DB
}

func (r *sessionRepo) Create(ctx context.Context, mood, mode string, plannedTopicIDs []string, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	planned, err := json.Marshal(plannedTopicIDs)
	if err != nil {
		return "", fmt.Errorf("marshal planned topics: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (id, mood, mode, planned_topics, started_at)
		VALUES (?, ?, ?, ?, ?)`, id, mood, mode, string(planned), startedAt)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	return id, nil
}

func (r *sessionRepo) Finish(ctx context.Context, id string, completedTopicIDs []string, xpEarned int, endedAt time.Time) error {
	completed, err := json.Marshal(completedTopicIDs)
	if err != nil {
		return fmt.Errorf("marshal completed topics: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE sessions
		SET completed_topics = ?, xp_earned = ?, ended_at = ?,
			duration_minutes = CAST((julianday(?) - julianday(started_at)) * 1440 AS INTEGER)
		WHERE id = ?`, string(completed), xpEarned, endedAt, endedAt, id)
	if err != nil {
		return fmt.Errorf("finish session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("session %q: %w", id, ErrNotFound)
	}
	return nil
}

func (r *sessionRepo) RecentTopicIDs(ctx context.Context, n int) (map[string]bool, error) {
	var rows []string
	err := r.db.SelectContext(ctx, &rows, `
		SELECT planned_topics FROM sessions
		ORDER BY started_at DESC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("recent session topics: %w", err)
	}

	ids := make(map[string]bool)
	for _, raw := range rows {
		var planned []string
		if err := json.Unmarshal([]byte(raw), &planned); err != nil {
			continue
		}
		for _, id := range planned {
			ids[id] = true
		}
	}
	return ids, nil
}

func (r *sessionRepo) PreferredStudyHours(ctx context.Context, minSamples int) ([]int, bool, error) {
	var starts []time.Time
	err := r.db.SelectContext(ctx, &starts, `
		SELECT started_at FROM sessions
		ORDER BY started_at DESC
		LIMIT 100`)
	if err != nil {
		return nil, false, fmt.Errorf("session start hours: %w", err)
	}
	if len(starts) < minSamples {
		return nil, false, nil
	}

	counts := make(map[int]int)
	for _, t := range starts {
		counts[t.Local().Hour()]++
	}

	hours := make([]int, 0, len(counts))
	for h := range counts {
		hours = append(hours, h)
	}
	sort.Slice(hours, func(i, j int) bool {
		if counts[hours[i]] != counts[hours[j]] {
			return counts[hours[i]] > counts[hours[j]]
		}
		return hours[i] < hours[j]
	})

	if len(hours) > 3 {
		hours = hours[:3]
	}
	sort.Ints(hours)
	return hours, true, nil
}
