package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IPlanRepository abstracts DynamoDB persistence for Plan.
type IPlanRepository interface {
	Create(ctx context.Context, p entities.Plan) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (entities.Plan, error)
	GetByUserID(ctx context.Context, userID string) (entities.Plan, error)
	SetPaid(ctx context.Context, id string, paid bool) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
}
