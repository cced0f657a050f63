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
	intakeSessionKeyPrefix = "intake:session:"
	intakeSubmitLockPrefix = "intake:submitlock:"

	defaultIntakeSessionTTLMinutes = 60
	intakeSubmitLockTTL            = 30 * time.Second
)

// IntakeSessionRedisRepository keeps wizard sessions in Redis as JSON values
// with a sliding TTL: every Save rearms the expiry, so an abandoned session
// disappears on its own.
//
// The submit lock is a separate SET NX key with a short TTL, released after
// the submission attempt. Its expiry bounds how long a crashed submit can
// keep the affordance consumed.
type IntakeSessionRedisRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ interfaces.IIntakeSessionStore = (*IntakeSessionRedisRepository)(nil)

func NewIntakeSessionRedisRepository(rdb *redis.Client) *IntakeSessionRedisRepository {
	ttlMinutes := defaultIntakeSessionTTLMinutes
	if v, err := strconv.Atoi(getenvDefault("INTAKE_SESSION_TTL_MINUTES", "")); err == nil && v > 0 {
		ttlMinutes = v
	}
	return &IntakeSessionRedisRepository{
		rdb: rdb,
		ttl: time.Duration(ttlMinutes) * time.Minute,
	}
}

func (r *IntakeSessionRedisRepository) Save(ctx context.Context, s entities.IntakeSession) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, intakeSessionKeyPrefix+s.ID, raw, r.ttl).Err()
}

func (r *IntakeSessionRedisRepository) Get(ctx context.Context, id string) (entities.IntakeSession, error) {
	raw, err := r.rdb.Get(ctx, intakeSessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.IntakeSession{}, nil
	}
	if err != nil {
		return entities.IntakeSession{}, err
	}

	var s entities.IntakeSession
	if err := json.Unmarshal(raw, &s); err != nil {
		return entities.IntakeSession{}, err
	}
	return s, nil
}

func (r *IntakeSessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, intakeSessionKeyPrefix+id).Err()
}

func (r *IntakeSessionRedisRepository) AcquireSubmitLock(ctx context.Context, id string) (bool, error) {
	return r.rdb.SetNX(ctx, intakeSubmitLockPrefix+id, "1", intakeSubmitLockTTL).Result()
}

func (r *IntakeSessionRedisRepository) ReleaseSubmitLock(ctx context.Context, id string) error {
	return r.rdb.Del(ctx, intakeSubmitLockPrefix+id).Err()
}
