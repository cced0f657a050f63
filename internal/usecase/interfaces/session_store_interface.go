package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// ISessionStore abstracts the Redis-backed console session lifecycle:
// populated at login, read on every authenticated request, cleared at logout.
// Get returns a zero-value session (empty Token) for unknown or expired
// tokens.
type ISessionStore interface {
	Save(ctx context.Context, s entities.Session) error
	Get(ctx context.Context, token string) (entities.Session, error)
	Delete(ctx context.Context, token string) error
}
