package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	authSessionKeyPrefix = "auth:session:"

	defaultAuthSessionTTLHours = 12
)

// SessionRedisRepository keeps console login sessions in Redis, keyed by the
// opaque bearer token. Reads do not rearm the TTL: a session lives at most
// the configured window from login.
type SessionRedisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.ISessionStore = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(rdb *redis.Client) *SessionRedisRepository {
	ttlHours := defaultAuthSessionTTLHours
	if v, err := strconv.Atoi(getenvDefault("AUTH_SESSION_TTL_HOURS", "")); err == nil && v > 0 {
		ttlHours = v
	}
	return &SessionRedisRepository{
		rdb: rdb,
		ttl: time.Duration(ttlHours) * time.Hour,
	}
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.Session) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, authSessionKeyPrefix+s.Token, raw, r.ttl).Err()
}

func (r *SessionRedisRepository) Get(ctx context.Context, token string) (entities.Session, error) {
	raw, err := r.rdb.Get(ctx, authSessionKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, err
	}

	var s entities.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.Session{}, err
	}
	return s, nil
}

func (r *SessionRedisRepository) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, authSessionKeyPrefix+token).Err()
}
