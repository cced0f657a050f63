package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IIntakeSessionStore abstracts the transient Redis storage for wizard
// sessions.
//
// Get returns a zero-value session (empty ID) when the key is missing or
// expired. AcquireSubmitLock is a set-if-absent with TTL: it returns false
// when another submission for the same session is already in flight, which is
// how the wizard consumes the submit affordance against double-clicks.
type IIntakeSessionStore interface {
	Save(ctx context.Context, s entities.IntakeSession) error
	Get(ctx context.Context, id string) (entities.IntakeSession, error)
	Delete(ctx context.Context, id string) error
	AcquireSubmitLock(ctx context.Context, id string) (bool, error)
	ReleaseSubmitLock(ctx context.Context, id string) error
}
