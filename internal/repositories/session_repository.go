package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PrassV/Propo-Staging-sub002/internal/models"
)

type SessionRepository struct {
	pool *pgxpool.Pool
}

func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

func (r *SessionRepository) Create(session *models.Session) error {
	ctx := context.Background()

	session.Prepare()

	query := `
		INSERT INTO sessions (id, user_id, refresh_token, is_revoked, expires_at)
		VALUES ($1, $2, $3, false, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.RefreshToken,
		session.ExpiresAt,
	)

	return err
}

func (r *SessionRepository) FindByToken(refreshToken string) (*models.Session, error) {
	ctx := context.Background()

	query := `
		SELECT id, user_id, refresh_token, is_revoked, created_at, expires_at
		FROM sessions WHERE refresh_token = $1
	`

	var session models.Session
	err := r.pool.QueryRow(ctx, query, refreshToken).Scan(
		&session.ID,
		&session.UserID,
		&session.RefreshToken,
		&session.IsRevoked,
		&session.CreatedAt,
		&session.ExpiresAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &session, nil
}

func (r *SessionRepository) Revoke(refreshToken string) error {
	ctx := context.Background()

	query := `UPDATE sessions SET is_revoked = true WHERE refresh_token = $1`
	_, err := r.pool.Exec(ctx, query, refreshToken)
	return err
}

// DeleteExpired removes sessions past their expiry and returns how many went.
func (r *SessionRepository) DeleteExpired() (int64, error) {
	ctx := context.Background()

	result, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at < NOW()`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
