package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IPlanServiceRepository abstracts DynamoDB persistence for PlanService.
type IPlanServiceRepository interface {
	Create(ctx context.Context, ps entities.PlanService) (entities.PlanService, error)
	GetByID(ctx context.Context, id string) (entities.PlanService, error)
	ListByPlanID(ctx context.Context, planID string) ([]entities.PlanService, error)
	Update(ctx context.Context, ps entities.PlanService) (entities.PlanService, error)
	Delete(ctx context.Context, id string) error
}
