package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/models"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSessionRepository struct {
	BaseRepository
	sealer *utils.TokenSealer
	now    func() time.Time
}

// NewSessionRepository creates a session store backed by the panel_sessions table.
func NewSessionRepository(pool *pgxpool.Pool, sealer *utils.TokenSealer) *PgxSessionRepository {
	return &PgxSessionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		sealer:         sealer,
		now:            time.Now,
	}
}

// Ensure PgxSessionRepository implements portsrepo.SessionRepositoryFacade
var _ portsrepo.SessionRepositoryFacade = (*PgxSessionRepository)(nil)

const (
	sessionsTable = "panel_sessions"

	selectSessionFields = `session_id, sealed_token, user_data, expires_at, created_at`

	upsertSessionQuery = `
		INSERT INTO ` + sessionsTable + ` (` + selectSessionFields + `)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (session_id) DO UPDATE SET
			sealed_token = EXCLUDED.sealed_token,
			user_data = EXCLUDED.user_data,
			expires_at = EXCLUDED.expires_at
	`

	findSessionByIDQuery = `
		SELECT ` + selectSessionFields + `
		FROM ` + sessionsTable + `
		WHERE session_id = $1 AND expires_at > $2
	`

	deleteSessionQuery = `DELETE FROM ` + sessionsTable + ` WHERE session_id = $1`

	deleteExpiredSessionsQuery = `DELETE FROM ` + sessionsTable + ` WHERE expires_at <= $1`
)

func (r *PgxSessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrNotFound
	}

	var m models.Session
	err := r.queryRow(ctx, findSessionByIDQuery, sessionID, r.now()).Scan(
		&m.ID,
		&m.SealedToken,
		&m.User,
		&m.ExpiresAt,
		&m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to query session", err)
	}

	session, err := mapping.ToDomainSession(m, r.sealer)
	if err != nil {
		if errors.Is(err, utils.ErrUnsealFailed) {
			// sealed with a previous secret
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *PgxSessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	m, err := mapping.ToModelSession(session, r.sealer)
	if err != nil {
		return err
	}
	if _, err := r.exec(ctx, upsertSessionQuery, m.ID, m.SealedToken, m.User, m.ExpiresAt, m.CreatedAt); err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to save session %s", m.ID), err)
	}
	return nil
}

func (r *PgxSessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	result, err := r.exec(ctx, deleteSessionQuery, sessionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete session", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	result, err := r.exec(ctx, deleteExpiredSessionsQuery, now)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to delete expired sessions", err)
	}
	return result.RowsAffected(), nil
}
