package usecase

import (
	"context"
	"errors"
	"log"
	"net/mail"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUserVal  = errors.New("invalid user payload")
	ErrInvalidUserRole = errors.New("invalid user role")
)

// UserInput is the editable part of a console account. Password is required on
// create; on update an empty password keeps the stored hash.
type UserInput struct {
	Username string
	Name     string
	Email    string
	Password string
	Role     entities.UserRole
	CPF      string
	Phone    string

	Gender    string
	BirthDate string
	CEP       string
	Company   string
}

// IUserUseCase exposes console account administration: registering operator,
// partner and collaborator accounts, plus list/block/remove. Customer accounts
// normally arrive through intake approval instead.
type IUserUseCase interface {
	Create(ctx context.Context, in UserInput) (entities.User, error)
	Update(ctx context.Context, id string, in UserInput) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	List(ctx context.Context, role entities.UserRole) ([]entities.User, error)
	SetBlocked(ctx context.Context, id string, blocked bool) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	repo interfaces.IUserRepository
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// Create registers an account with a bcrypt-hashed password. Emails are
// normalized to lower case; the email-index lookup guards uniqueness.
func (u *UserUseCase) Create(ctx context.Context, in UserInput) (entities.User, error) {
	in, err := normalizeUserInput(in)
	if err != nil {
		return entities.User{}, err
	}
	if in.Password == "" {
		return entities.User{}, ErrInvalidUserVal
	}

	existing, err := u.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return entities.User{}, err
	}
	if existing.ID != "" {
		return entities.User{}, ErrEmailAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, err
	}

	now := time.Now().UTC()
	created, err := u.repo.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     in.Username,
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CPF:          in.CPF,
		Phone:        in.Phone,
		Metadata: entities.UserMetadata{
			Gender:    in.Gender,
			BirthDate: in.BirthDate,
			CEP:       in.CEP,
			Company:   in.Company,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.User{}, err
	}
	log.Printf("[user][usecase] account created user_id=%s role=%s", created.ID, created.Role)
	return created, nil
}

// Update rewrites the account's profile. An empty password keeps the current
// hash; changing the email re-checks uniqueness against the email index.
func (u *UserUseCase) Update(ctx context.Context, id string, in UserInput) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	in, err = normalizeUserInput(in)
	if err != nil {
		return entities.User{}, err
	}

	if in.Email != user.Email {
		existing, err := u.repo.GetByEmail(ctx, in.Email)
		if err != nil {
			return entities.User{}, err
		}
		if existing.ID != "" {
			return entities.User{}, ErrEmailAlreadyRegistered
		}
	}

	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = string(hash)
	}

	user.Username = in.Username
	user.Name = in.Name
	user.Email = in.Email
	user.Role = in.Role
	user.CPF = in.CPF
	user.Phone = in.Phone
	user.Metadata = entities.UserMetadata{
		Gender:    in.Gender,
		BirthDate: in.BirthDate,
		CEP:       in.CEP,
		Company:   in.Company,
	}
	user.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) GetByID(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) List(ctx context.Context, role entities.UserRole) ([]entities.User, error) {
	return u.repo.List(ctx, role)
}

func (u *UserUseCase) SetBlocked(ctx context.Context, id string, blocked bool) (entities.User, error) {
	user, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}

	user.Blocked = blocked
	updated, err := u.repo.Update(ctx, user)
	if err != nil {
		log.Printf("[user][usecase] block update failed user_id=%s err=%v", id, err)
		return entities.User{}, err
	}
	if updated.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return updated, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, id)
}

func normalizeUserInput(in UserInput) (UserInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Username = strings.TrimSpace(in.Username)
	if in.Username == "" {
		in.Username = in.Email
	}

	if in.Name == "" || in.Email == "" {
		return UserInput{}, ErrInvalidUserVal
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return UserInput{}, ErrInvalidUserVal
	}
	switch in.Role {
	case entities.UserRoleAdmin, entities.UserRoleCollaborator, entities.UserRolePartner, entities.UserRoleCustomer:
	default:
		return UserInput{}, ErrInvalidUserRole
	}
	return in, nil
}
