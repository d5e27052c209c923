package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/business_panel/internal/apperrors"
	"github.com/SscSPs/business_panel/internal/core/domain"
	portsrepo "github.com/SscSPs/business_panel/internal/core/ports/repositories"
	"github.com/SscSPs/business_panel/internal/models"
	"github.com/SscSPs/business_panel/internal/utils"
	"github.com/SscSPs/business_panel/internal/utils/mapping"
	goredis "github.com/go-redis/redis/v8"
)

const keyPrefix = "panel:session:"

// SessionRepository stores one JSON value per session. Redis expires the
// keys itself, so DeleteExpiredSessions has nothing to do.
type SessionRepository struct {
	client *goredis.Client
	sealer *utils.TokenSealer
	now    func() time.Time
}

var _ portsrepo.SessionRepositoryFacade = (*SessionRepository)(nil)

func NewSessionRepository(client *goredis.Client, sealer *utils.TokenSealer) *SessionRepository {
	return &SessionRepository{client: client, sealer: sealer, now: time.Now}
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *SessionRepository) FindSessionByID(ctx context.Context, sessionID string) (*domain.Session, error) {
	if sessionID == "" {
		return nil, apperrors.ErrNotFound
	}
	raw, err := r.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to read session", err)
	}

	var m models.Session
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("decoding session %s: %w", sessionID, err)
	}
	session, err := mapping.ToDomainSession(m, r.sealer)
	if err != nil {
		if errors.Is(err, utils.ErrUnsealFailed) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) SaveSession(ctx context.Context, session domain.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return r.client.Del(ctx, sessionKey(session.ID)).Err()
	}
	m, err := mapping.ToModelSession(session, r.sealer)
	if err != nil {
		return err
	}
	payload, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encoding session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), payload, ttl).Err(); err != nil {
		return apperrors.NewAppError(500, "failed to save session", err)
	}
	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, sessionID string) error {
	n, err := r.client.Del(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete session", err)
	}
	if n == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *SessionRepository) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}

func (r *SessionRepository) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return apperrors.NewAppError(503, "redis unreachable", err)
	}
	return nil
}
