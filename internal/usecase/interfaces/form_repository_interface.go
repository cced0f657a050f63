package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IFormRepository abstracts DynamoDB persistence for Form.
//
// GetByIDPopulated is the public-intake read: options in position order with
// their primary and secondary services resolved, so the wizard fetches the
// whole catalog in one call at session start.
type IFormRepository interface {
	Create(ctx context.Context, f entities.Form) (entities.Form, error)
	GetByID(ctx context.Context, id string) (entities.Form, error)
	GetByIDPopulated(ctx context.Context, id string) (entities.Form, error)
	List(ctx context.Context) ([]entities.Form, error)
	Update(ctx context.Context, f entities.Form) (entities.Form, error)
	Delete(ctx context.Context, id string) error
}
