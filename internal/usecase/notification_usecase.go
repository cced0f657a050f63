package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrNotificationNotFound      = errors.New("notification not found")
	ErrInvalidNotificationID     = errors.New("invalid notification id")
	ErrInvalidNotificationVal    = errors.New("invalid notification payload")
	ErrNotificationNotApprovable = errors.New("notification has no intake submission to approve")
	ErrSubmissionUserExists      = errors.New("submission user already registered")
)

// INotificationUseCase exposes the console inbox plus the approval flow that
// turns an intake submission into a registered user with an unpaid plan.
type INotificationUseCase interface {
	Create(ctx context.Context, title string, metadata json.RawMessage) (entities.Notification, error)
	GetByID(ctx context.Context, id string) (entities.Notification, error)
	List(ctx context.Context) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id string) (entities.Notification, error)
	Approve(ctx context.Context, id string) (entities.User, entities.Plan, error)
	Delete(ctx context.Context, id string) error
}

type NotificationUseCase struct {
	repo         interfaces.INotificationRepository
	users        interfaces.IUserRepository
	plans        interfaces.IPlanRepository
	planServices interfaces.IPlanServiceRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(
	repo interfaces.INotificationRepository,
	users interfaces.IUserRepository,
	plans interfaces.IPlanRepository,
	planServices interfaces.IPlanServiceRepository,
) *NotificationUseCase {
	return &NotificationUseCase{repo: repo, users: users, plans: plans, planServices: planServices}
}

func (u *NotificationUseCase) Create(ctx context.Context, title string, metadata json.RawMessage) (entities.Notification, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return entities.Notification{}, ErrInvalidNotificationVal
	}
	if len(metadata) > 0 && !json.Valid(metadata) {
		return entities.Notification{}, ErrInvalidNotificationVal
	}

	now := time.Now().UTC()
	n := entities.Notification{
		ID:          uuid.NewString(),
		Title:       title,
		MetadataRaw: metadata,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, n)
}

func (u *NotificationUseCase) GetByID(ctx context.Context, id string) (entities.Notification, error) {
	n, err := u.get(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	return n, nil
}

func (u *NotificationUseCase) List(ctx context.Context) ([]entities.Notification, error) {
	return u.repo.List(ctx)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	updated, err := u.repo.SetRead(ctx, id, true)
	if err != nil {
		return entities.Notification{}, err
	}
	if updated.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return updated, nil
}

// Approve provisions the registration carried by an intake submission
// notification: the user account (initial password is the submitted CPF,
// bcrypt-hashed), an unpaid plan, and one plan-service line per selection.
// The notification is marked read afterwards.
func (u *NotificationUseCase) Approve(ctx context.Context, id string) (entities.User, entities.Plan, error) {
	n, err := u.get(ctx, id)
	if err != nil {
		return entities.User{}, entities.Plan{}, err
	}

	var meta entities.IntakeSubmissionMetadata
	if len(n.MetadataRaw) == 0 || json.Unmarshal(n.MetadataRaw, &meta) != nil ||
		meta.Type != entities.NotificationTypeIntakeSubmission || meta.User.Email == "" {
		return entities.User{}, entities.Plan{}, ErrNotificationNotApprovable
	}

	existing, err := u.users.GetByEmail(ctx, meta.User.Email)
	if err != nil {
		return entities.User{}, entities.Plan{}, err
	}
	if existing.ID != "" {
		return entities.User{}, entities.Plan{}, ErrSubmissionUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(meta.User.Password), bcrypt.DefaultCost)
	if err != nil {
		return entities.User{}, entities.Plan{}, err
	}

	now := time.Now().UTC()
	user, err := u.users.Create(ctx, entities.User{
		ID:           uuid.NewString(),
		Username:     meta.User.Username,
		Name:         meta.User.Name,
		Email:        meta.User.Email,
		PasswordHash: string(hash),
		Role:         entities.UserRoleCustomer,
		CPF:          meta.User.CPF,
		Phone:        meta.User.Phone,
		Metadata: entities.UserMetadata{
			Gender:    meta.User.Gender,
			BirthDate: meta.User.BirthDate,
			CEP:       meta.User.CEP,
			Company:   meta.User.Company,
		},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.User{}, entities.Plan{}, err
	}

	plan, err := u.plans.Create(ctx, entities.Plan{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return entities.User{}, entities.Plan{}, err
	}

	for _, svc := range meta.Services {
		if _, err := u.planServices.Create(ctx, entities.PlanService{
			ID:             uuid.NewString(),
			PlanID:         plan.ID,
			ServiceID:      svc.ServiceID,
			Frequency:      svc.Frequency,
			FrequencyLabel: svc.FrequencyLabel,
			CreatedAt:      now,
			UpdatedAt:      now,
		}); err != nil {
			log.Printf("[notification][usecase] plan service create failed notification_id=%s plan_id=%s err=%v", n.ID, plan.ID, err)
			return entities.User{}, entities.Plan{}, err
		}
	}

	if _, err := u.repo.SetRead(ctx, n.ID, true); err != nil {
		// Provisioning already happened; an unread flag is not worth failing over.
		log.Printf("[notification][usecase] mark read failed notification_id=%s err=%v", n.ID, err)
	}

	log.Printf("[notification][usecase] approval success notification_id=%s user_id=%s plan_id=%s services=%d", n.ID, user.ID, plan.ID, len(meta.Services))
	return user, plan, nil
}

func (u *NotificationUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.get(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func (u *NotificationUseCase) get(ctx context.Context, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}

	n, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}
