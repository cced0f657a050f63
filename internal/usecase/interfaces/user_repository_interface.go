package interfaces

import (
	"context"

	"beautytag/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for User.
//
// GetByEmail doubles as the intake wizard's uniqueness check: an empty result
// (zero-value User) means the email is free to register.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByEmail(ctx context.Context, email string) (entities.User, error)
	List(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
	Delete(ctx context.Context, id string) error
}
