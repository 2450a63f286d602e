package repository

import (
	"context"
	"errors"
	"fmt"

	"service_marketplace/internal/model"

	"github.com/jackc/pgx/v5"
)

// SessionRepository stores login sessions in the session table
type SessionRepository interface {
	Create(ctx context.Context, session *model.Session) error
	FindByID(ctx context.Context, id string) (*model.Session, error)
	Delete(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

type sessionRepository struct {
	db DBTX
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(db DBTX) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *model.Session) error {
	sql := `INSERT INTO session (sid, user_id, expire) VALUES ($1, $2, $3)`
	if _, err := r.db.Exec(ctx, sql, s.ID, s.UserID, s.ExpiresAt); err != nil {
		return fmt.Errorf("failed to create session: %w", classify(err))
	}
	return nil
}

// FindByID returns a live session, nil when absent or expired
func (r *sessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	s := &model.Session{}
	sql := `SELECT sid, user_id, expire FROM session WHERE sid = $1 AND expire > NOW()`
	err := r.db.QueryRow(ctx, sql, id).Scan(&s.ID, &s.UserID, &s.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}
	return s, nil
}

// Delete removes a session; deleting an unknown session is not an error
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM session WHERE sid = $1`, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// DeleteExpired prunes stale sessions and reports how many were removed
func (r *sessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM session WHERE expire <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("failed to prune sessions: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
