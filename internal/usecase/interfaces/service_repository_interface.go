package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IServiceRepository abstracts DynamoDB persistence for Service.
type IServiceRepository interface {
	Create(ctx context.Context, s entities.Service) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	GetByIDs(ctx context.Context, ids []string) ([]entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Update(ctx context.Context, s entities.Service) (entities.Service, error)
	Delete(ctx context.Context, id string) error
}
