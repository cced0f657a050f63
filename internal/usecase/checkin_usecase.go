package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrCheckinNotFound     = errors.New("checkin not found")
	ErrInvalidCheckinID    = errors.New("invalid checkin id")
	ErrInvalidCheckinVal   = errors.New("invalid checkin payload")
	ErrInvalidCheckinState = errors.New("invalid checkin state")
)

// CheckinInput is the editable part of a scheduled visit.
type CheckinInput struct {
	State        entities.CheckinState
	Phone        string
	ServiceID    string
	ReservedDate string
	StartedAt    *time.Time
	FinishedAt   *time.Time
}

// ICheckinUseCase exposes scheduled-visit operations.
type ICheckinUseCase interface {
	Create(ctx context.Context, in CheckinInput) (entities.Checkin, error)
	GetByID(ctx context.Context, id string) (entities.Checkin, error)
	GetByHash(ctx context.Context, hash string) (entities.Checkin, error)
	List(ctx context.Context) ([]entities.Checkin, error)
	Update(ctx context.Context, id string, in CheckinInput) (entities.Checkin, error)
	Delete(ctx context.Context, id string) error
}

type CheckinUseCase struct {
	repo interfaces.ICheckinRepository
}

var _ ICheckinUseCase = (*CheckinUseCase)(nil)

func NewCheckinUseCase(repo interfaces.ICheckinRepository) *CheckinUseCase {
	return &CheckinUseCase{repo: repo}
}

func (u *CheckinUseCase) Create(ctx context.Context, in CheckinInput) (entities.Checkin, error) {
	if err := validateCheckinInput(in); err != nil {
		return entities.Checkin{}, err
	}

	now := time.Now().UTC()
	c := entities.Checkin{
		ID:           uuid.NewString(),
		Hash:         uuid.NewString(),
		State:        in.State,
		Phone:        in.Phone,
		ServiceID:    in.ServiceID,
		ReservedDate: in.ReservedDate,
		StartedAt:    in.StartedAt,
		FinishedAt:   in.FinishedAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if c.State == "" {
		c.State = entities.CheckinStatePendente
	}
	return u.repo.Create(ctx, c)
}

func (u *CheckinUseCase) GetByID(ctx context.Context, id string) (entities.Checkin, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Checkin{}, ErrInvalidCheckinID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Checkin{}, err
	}
	if c.ID == "" {
		return entities.Checkin{}, ErrCheckinNotFound
	}
	return c, nil
}

func (u *CheckinUseCase) GetByHash(ctx context.Context, hash string) (entities.Checkin, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return entities.Checkin{}, ErrInvalidCheckinID
	}

	c, err := u.repo.GetByHash(ctx, hash)
	if err != nil {
		return entities.Checkin{}, err
	}
	if c.ID == "" {
		return entities.Checkin{}, ErrCheckinNotFound
	}
	return c, nil
}

func (u *CheckinUseCase) List(ctx context.Context) ([]entities.Checkin, error) {
	return u.repo.List(ctx)
}

func (u *CheckinUseCase) Update(ctx context.Context, id string, in CheckinInput) (entities.Checkin, error) {
	c, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Checkin{}, err
	}
	if err := validateCheckinInput(in); err != nil {
		return entities.Checkin{}, err
	}

	c.State = in.State
	c.Phone = in.Phone
	c.ServiceID = in.ServiceID
	c.ReservedDate = in.ReservedDate
	c.StartedAt = in.StartedAt
	c.FinishedAt = in.FinishedAt
	c.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, c)
}

func (u *CheckinUseCase) Delete(ctx context.Context, id string) error {
	if _, err := u.GetByID(ctx, id); err != nil {
		return err
	}
	return u.repo.Delete(ctx, strings.TrimSpace(id))
}

func validateCheckinInput(in CheckinInput) error {
	if strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.ServiceID) == "" || strings.TrimSpace(in.ReservedDate) == "" {
		return ErrInvalidCheckinVal
	}
	switch in.State {
	case "", entities.CheckinStatePendente, entities.CheckinStateConfirmado, entities.CheckinStateConcluido, entities.CheckinStateCancelado:
		return nil
	default:
		return ErrInvalidCheckinState
	}
}
