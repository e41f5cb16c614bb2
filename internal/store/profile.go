package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// ProfileRepo provides access to the single user profile row.
type ProfileRepo interface {
	// Get returns the profile, creating the default row on first access.
	Get(ctx context.Context) (*Profile, error)

	// Update writes the profile back.
	Update(ctx context.Context, p *Profile) error
}

type profileRepo struct {
	db *sqlx.DB
}

func (r *profileRepo) Get(ctx context.Context) (*Profile, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profile (id) VALUES (1)
		ON CONFLICT(id) DO NOTHING`)
	if err != nil {
		return nil, fmt.Errorf("ensure profile: %w", err)
	}

	var p Profile
	if err := r.db.GetContext(ctx, &p, `SELECT * FROM profile WHERE id = 1`); err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

func (r *profileRepo) Update(ctx context.Context, p *Profile) error {
	p.ID = 1
	_, err := r.db.NamedExecContext(ctx, `
		UPDATE profile SET
			daily_goal_minutes = :daily_goal_minutes,
			preferred_session_minutes = :preferred_session_minutes,
			exam_date = :exam_date,
			streak_days = :streak_days,
			last_active_at = :last_active_at
		WHERE id = 1`, p)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	return nil
}
