package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// ICheckinRepository abstracts DynamoDB persistence for Checkin.
type ICheckinRepository interface {
	Create(ctx context.Context, c entities.Checkin) (entities.Checkin, error)
	GetByID(ctx context.Context, id string) (entities.Checkin, error)
	GetByHash(ctx context.Context, hash string) (entities.Checkin, error)
	List(ctx context.Context) ([]entities.Checkin, error)
	Update(ctx context.Context, c entities.Checkin) (entities.Checkin, error)
	Delete(ctx context.Context, id string) error
}
