// Package session provides the Redis-backed refresh session store.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"mood_backend/internal/feature/auth/domain/entity"
	"mood_backend/internal/feature/auth/usecase"
)

// revokedSessionTTL keeps revoked sessions around briefly for auditing.
const revokedSessionTTL = 24 * time.Hour

// SessionRedis implements usecase.SessionRepository using Redis.
// Expiration is delegated to Redis TTLs; the account set is pruned lazily
// when stale members are encountered.
type SessionRedis struct {
	client *redis.Client
	prefix string
}

var _ usecase.SessionRepository = (*SessionRedis)(nil)

// NewSessionRedis creates a new SessionRedis instance.
func NewSessionRedis(client *redis.Client, prefix string) *SessionRedis {
	return &SessionRedis{
		client: client,
		prefix: prefix,
	}
}

// sessionKey returns the Redis key for a session.
func (r *SessionRedis) sessionKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// accountSessionsKey returns the Redis key for an account's session set.
func (r *SessionRedis) accountSessionsKey(accountID uint) string {
	return fmt.Sprintf("%s:account:%d", r.prefix, accountID)
}

// Create persists a new session to Redis with a TTL matching its expiry.
func (r *SessionRedis) Create(ctx context.Context, session *entity.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session already expired")
	}

	// Store session data
	if err := r.client.Set(ctx, r.sessionKey(session.ID), data, ttl).Err(); err != nil {
		return err
	}

	// Add to the account's session set
	if err := r.client.SAdd(ctx, r.accountSessionsKey(session.AccountID), session.ID).Err(); err != nil {
		return err
	}

	return nil
}

// FindByID retrieves a session by its ID.
func (r *SessionRedis) FindByID(ctx context.Context, id string) (*entity.Session, error) {
	data, err := r.client.Get(ctx, r.sessionKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrSessionNotFound
		}
		return nil, err
	}

	var session entity.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// findByAccountID retrieves all live sessions for an account, pruning set
// members whose session key has already expired.
func (r *SessionRedis) findByAccountID(ctx context.Context, accountID uint) ([]*entity.Session, error) {
	ids, err := r.client.SMembers(ctx, r.accountSessionsKey(accountID)).Result()
	if err != nil {
		return nil, err
	}

	var sessions []*entity.Session
	for _, id := range ids {
		session, err := r.FindByID(ctx, id)
		if err != nil {
			if err == usecase.ErrSessionNotFound {
				// Session expired, remove from set
				r.client.SRem(ctx, r.accountSessionsKey(accountID), id)
				continue
			}
			return nil, err
		}
		if session.IsValid() {
			sessions = append(sessions, session)
		}
	}

	return sessions, nil
}

// Revoke marks a session as revoked.
func (r *SessionRedis) Revoke(ctx context.Context, id string) error {
	session, err := r.FindByID(ctx, id)
	if err != nil {
		return err
	}

	now := time.Now()
	session.RevokedAt = &now

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Keep a short TTL on revoked sessions for audit purposes
	if err := r.client.Set(ctx, r.sessionKey(id), data, revokedSessionTTL).Err(); err != nil {
		return err
	}
	return r.client.SRem(ctx, r.accountSessionsKey(session.AccountID), id).Err()
}

// CountByAccountID returns the number of live sessions for an account.
func (r *SessionRedis) CountByAccountID(ctx context.Context, accountID uint) (int64, error) {
	sessions, err := r.findByAccountID(ctx, accountID)
	if err != nil {
		return 0, err
	}
	return int64(len(sessions)), nil
}

// DeleteOldestByAccountID deletes the oldest session for an account.
func (r *SessionRedis) DeleteOldestByAccountID(ctx context.Context, accountID uint) error {
	sessions, err := r.findByAccountID(ctx, accountID)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		return nil
	}

	// Find the oldest session
	oldest := sessions[0]
	for _, s := range sessions[1:] {
		if s.CreatedAt.Before(oldest.CreatedAt) {
			oldest = s
		}
	}

	// Delete from Redis
	if err := r.client.Del(ctx, r.sessionKey(oldest.ID)).Err(); err != nil {
		return err
	}

	// Remove from the account's session set
	return r.client.SRem(ctx, r.accountSessionsKey(accountID), oldest.ID).Err()
}
