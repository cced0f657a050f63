package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
// Create is also the public intake wizard's submission sink.
type INotificationRepository interface {
	Create(ctx context.Context, n entities.Notification) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	List(ctx context.Context) ([]entities.Notification, error)
	SetRead(ctx context.Context, id string, read bool) (entities.Notification, error)
	Delete(ctx context.Context, id string) error
}
