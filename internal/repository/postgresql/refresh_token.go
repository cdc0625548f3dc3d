package postgresql

import (
	"context"
	"time"

	"github.com/eventosfin/financeiro-backend-go/internal/pkg/database"
)

// RefreshTokenRepository persists issued refresh tokens so they can be
// revoked server-side and rotated on use.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID int64, token string, expiresAt int64) error
	IsActive(ctx context.Context, token string) (bool, error)
	Revoke(ctx context.Context, token string) error
	RevokeAllForUser(ctx context.Context, userID int64) error
}

type refreshTokenRepositoryImpl struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) RefreshTokenRepository {
	return &refreshTokenRepositoryImpl{db: db}
}

// Store implements RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Store(ctx context.Context, userID int64, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token, expires_at)
		VALUES ($1, $2, $3)
	`, userID, token, time.Unix(expiresAt, 0))
	return err
}

// IsActive implements RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) IsActive(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var active bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM refresh_tokens
			WHERE token = $1 AND revoked_at IS NULL AND expires_at > NOW()
		)
	`, token).Scan(&active)
	if err != nil {
		return false, err
	}
	return active, nil
}

// Revoke implements RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE token = $1 AND revoked_at IS NULL`, token)
	return err
}

// RevokeAllForUser implements RefreshTokenRepository.
func (r *refreshTokenRepositoryImpl) RevokeAllForUser(ctx context.Context, userID int64) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = NOW() WHERE user_id = $1 AND revoked_at IS NULL`, userID)
	return err
}
