package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IFormOptionRepository abstracts DynamoDB persistence for FormOption.
type IFormOptionRepository interface {
	Create(ctx context.Context, o entities.FormOption) (entities.FormOption, error)
	GetByID(ctx context.Context, id string) (entities.FormOption, error)
	ListByFormID(ctx context.Context, formID string) ([]entities.FormOption, error)
	Update(ctx context.Context, o entities.FormOption) (entities.FormOption, error)
	Delete(ctx context.Context, id string) error
}
