package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/domain/pricing"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound   = errors.New("service not found")
	ErrInvalidServiceID  = errors.New("invalid service id")
	ErrInvalidServiceVal = errors.New("invalid service payload")
	ErrInvalidPercent    = errors.New("percent out of range")
)

// ServiceInput is the editable part of a service. The three derived prices are
// computed here from Price and the two percentages; callers never set them.
type ServiceInput struct {
	Name                string
	Description         string
	Gender              entities.ServiceGender
	PartnerID           string
	Price               float64
	CollaboratorPercent float64
	TransferPercent     float64
}

// IServiceUseCase exposes service catalog operations.
type IServiceUseCase interface {
	Create(ctx context.Context, in ServiceInput) (entities.Service, error)
	Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error)
	GetByID(ctx context.Context, id string) (entities.Service, error)
	List(ctx context.Context) ([]entities.Service, error)
	Delete(ctx context.Context, id string) error
}

type ServiceUseCase struct {
	repo interfaces.IServiceRepository
}

var _ IServiceUseCase = (*ServiceUseCase)(nil)

func NewServiceUseCase(repo interfaces.IServiceRepository) *ServiceUseCase {
	return &ServiceUseCase{repo: repo}
}

func (u *ServiceUseCase) Create(ctx context.Context, in ServiceInput) (entities.Service, error) {
	s, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}

	now := time.Now().UTC()
	s.ID = uuid.NewString()
	s.CreatedAt = now
	s.UpdatedAt = now
	return u.repo.Create(ctx, s)
}

func (u *ServiceUseCase) Update(ctx context.Context, id string, in ServiceInput) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if existing.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}

	s, err := buildService(in)
	if err != nil {
		return entities.Service{}, err
	}
	s.ID = existing.ID
	s.CreatedAt = existing.CreatedAt
	s.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, s)
}

func (u *ServiceUseCase) GetByID(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}

	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

func (u *ServiceUseCase) List(ctx context.Context) ([]entities.Service, error) {
	return u.repo.List(ctx)
}

func (u *ServiceUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidServiceID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrServiceNotFound
	}
	return u.repo.Delete(ctx, id)
}

func buildService(in ServiceInput) (entities.Service, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.PartnerID = strings.TrimSpace(in.PartnerID)
	if in.Name == "" || in.PartnerID == "" || in.Price < 0 {
		return entities.Service{}, ErrInvalidServiceVal
	}
	// pricing.Compute itself does not clamp; the range check lives here so the
	// stored record never carries an out-of-range split.
	if in.CollaboratorPercent < 0 || in.CollaboratorPercent > 100 ||
		in.TransferPercent < 0 || in.TransferPercent > 100 {
		return entities.Service{}, ErrInvalidPercent
	}

	alloc := pricing.Compute(in.Price, in.CollaboratorPercent, in.TransferPercent)
	return entities.Service{
		Name:                in.Name,
		Description:         in.Description,
		Gender:              in.Gender,
		PartnerID:           in.PartnerID,
		Price:               in.Price,
		CollaboratorPercent: in.CollaboratorPercent,
		TransferPercent:     in.TransferPercent,
		CollaboratorPrice:   alloc.CollaboratorPrice,
		PartnerPrice:        alloc.PartnerPrice,
		Profit:              alloc.Profit,
	}, nil
}
