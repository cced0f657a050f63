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
	ErrFormNotFound       = errors.New("form not found")
	ErrInvalidFormID      = errors.New("invalid form id")
	ErrInvalidFormVal     = errors.New("invalid form payload")
	ErrFormOptionNotFound = errors.New("form option not found")
	ErrInvalidOptionVal   = errors.New("invalid form option payload")
)

// IFormUseCase manages intake forms and their option slots.
type IFormUseCase interface {
	Create(ctx context.Context, name, description string) (entities.Form, error)
	GetByID(ctx context.Context, id string) (entities.Form, error)
	GetPublicByID(ctx context.Context, id string) (entities.Form, error)
	List(ctx context.Context) ([]entities.Form, error)
	Update(ctx context.Context, id, name, description string) (entities.Form, error)
	Delete(ctx context.Context, id string) error

	AddOption(ctx context.Context, formID, primaryServiceID string, secondaryServiceIDs []string) (entities.FormOption, error)
	UpdateOption(ctx context.Context, optionID, primaryServiceID string, secondaryServiceIDs []string) (entities.FormOption, error)
	RemoveOption(ctx context.Context, optionID string) error
}

type FormUseCase struct {
	repo     interfaces.IFormRepository
	options  interfaces.IFormOptionRepository
	services interfaces.IServiceRepository
}

var _ IFormUseCase = (*FormUseCase)(nil)

func NewFormUseCase(repo interfaces.IFormRepository, options interfaces.IFormOptionRepository, services interfaces.IServiceRepository) *FormUseCase {
	return &FormUseCase{repo: repo, options: options, services: services}
}

func (u *FormUseCase) Create(ctx context.Context, name, description string) (entities.Form, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Form{}, ErrInvalidFormVal
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Form{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

func (u *FormUseCase) GetByID(ctx context.Context, id string) (entities.Form, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Form{}, ErrInvalidFormID
	}

	f, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Form{}, err
	}
	if f.ID == "" {
		return entities.Form{}, ErrFormNotFound
	}
	return f, nil
}

// GetPublicByID is the unauthenticated read used to render the intake wizard:
// options come back populated with their services.
func (u *FormUseCase) GetPublicByID(ctx context.Context, id string) (entities.Form, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Form{}, ErrInvalidFormID
	}

	f, err := u.repo.GetByIDPopulated(ctx, id)
	if err != nil {
		return entities.Form{}, err
	}
	if f.ID == "" {
		return entities.Form{}, ErrFormNotFound
	}
	return f, nil
}

func (u *FormUseCase) List(ctx context.Context) ([]entities.Form, error) {
	return u.repo.List(ctx)
}

func (u *FormUseCase) Update(ctx context.Context, id, name, description string) (entities.Form, error) {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Form{}, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Form{}, ErrInvalidFormVal
	}

	f.Name = name
	f.Description = description
	f.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, f)
}

func (u *FormUseCase) Delete(ctx context.Context, id string) error {
	f, err := u.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Options are owned by the form; they go with it.
	opts, err := u.options.ListByFormID(ctx, f.ID)
	if err != nil {
		return err
	}
	for _, o := range opts {
		if err := u.options.Delete(ctx, o.ID); err != nil {
			return err
		}
	}
	return u.repo.Delete(ctx, f.ID)
}

func (u *FormUseCase) AddOption(ctx context.Context, formID, primaryServiceID string, secondaryServiceIDs []string) (entities.FormOption, error) {
	f, err := u.GetByID(ctx, formID)
	if err != nil {
		return entities.FormOption{}, err
	}

	primaryServiceID = strings.TrimSpace(primaryServiceID)
	if primaryServiceID == "" {
		return entities.FormOption{}, ErrInvalidOptionVal
	}
	if err := u.checkServices(ctx, primaryServiceID, secondaryServiceIDs); err != nil {
		return entities.FormOption{}, err
	}

	existing, err := u.options.ListByFormID(ctx, f.ID)
	if err != nil {
		return entities.FormOption{}, err
	}

	now := time.Now().UTC()
	return u.options.Create(ctx, entities.FormOption{
		ID:                  uuid.NewString(),
		FormID:              f.ID,
		Position:            len(existing),
		PrimaryServiceID:    primaryServiceID,
		SecondaryServiceIDs: secondaryServiceIDs,
		CreatedAt:           now,
		UpdatedAt:           now,
	})
}

func (u *FormUseCase) UpdateOption(ctx context.Context, optionID, primaryServiceID string, secondaryServiceIDs []string) (entities.FormOption, error) {
	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return entities.FormOption{}, ErrFormOptionNotFound
	}

	o, err := u.options.GetByID(ctx, optionID)
	if err != nil {
		return entities.FormOption{}, err
	}
	if o.ID == "" {
		return entities.FormOption{}, ErrFormOptionNotFound
	}

	primaryServiceID = strings.TrimSpace(primaryServiceID)
	if primaryServiceID == "" {
		return entities.FormOption{}, ErrInvalidOptionVal
	}
	if err := u.checkServices(ctx, primaryServiceID, secondaryServiceIDs); err != nil {
		return entities.FormOption{}, err
	}

	o.PrimaryServiceID = primaryServiceID
	o.SecondaryServiceIDs = secondaryServiceIDs
	o.UpdatedAt = time.Now().UTC()
	return u.options.Update(ctx, o)
}

func (u *FormUseCase) RemoveOption(ctx context.Context, optionID string) error {
	optionID = strings.TrimSpace(optionID)
	if optionID == "" {
		return ErrFormOptionNotFound
	}

	o, err := u.options.GetByID(ctx, optionID)
	if err != nil {
		return err
	}
	if o.ID == "" {
		return ErrFormOptionNotFound
	}
	return u.options.Delete(ctx, optionID)
}

func (u *FormUseCase) checkServices(ctx context.Context, primaryID string, secondaryIDs []string) error {
	ids := append([]string{primaryID}, secondaryIDs...)
	svcs, err := u.services.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[string]bool, len(svcs))
	for _, s := range svcs {
		found[s.ID] = true
	}
	for _, id := range ids {
		if !found[id] {
			return ErrServiceNotFound
		}
	}
	return nil
}
