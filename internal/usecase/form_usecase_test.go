package usecase

import (
	"context"
	"errors"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type formMocks struct {
	repo     *mock_interfaces.MockIFormRepository
	options  *mock_interfaces.MockIFormOptionRepository
	services *mock_interfaces.MockIServiceRepository
}

func newFormUseCase(t *testing.T) (*FormUseCase, formMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := formMocks{
		repo:     mock_interfaces.NewMockIFormRepository(ctrl),
		options:  mock_interfaces.NewMockIFormOptionRepository(ctrl),
		services: mock_interfaces.NewMockIServiceRepository(ctrl),
	}
	return NewFormUseCase(m.repo, m.options, m.services), m, ctrl
}

func TestFormUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc := NewFormUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", "desc")
		if !errors.Is(err, ErrInvalidFormVal) {
			t.Fatalf("expected ErrInvalidFormVal, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, f entities.Form) (entities.Form, error) {
				if f.ID == "" || f.Name != "Cadastro" {
					t.Fatalf("unexpected form %+v", f)
				}
				return f, nil
			})

		if _, err := uc.Create(context.Background(), " Cadastro ", "desc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormUseCase_GetPublicByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByIDPopulated(gomock.Any(), "form-404").Return(entities.Form{}, nil)

		_, err := uc.GetPublicByID(context.Background(), "form-404")
		if !errors.Is(err, ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})

	t.Run("returns populated options", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		primary := entities.Service{ID: "svc-a", Name: "Limpeza de Pele"}
		m.repo.EXPECT().GetByIDPopulated(gomock.Any(), "form-1").Return(entities.Form{
			ID:      "form-1",
			Options: []entities.FormOption{{ID: "opt-1", PrimaryService: &primary}},
		}, nil)

		f, err := uc.GetPublicByID(context.Background(), "form-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(f.Options) != 1 || f.Options[0].PrimaryService == nil {
			t.Fatalf("expected populated options, got %+v", f.Options)
		}
	})
}

func TestFormUseCase_Delete(t *testing.T) {
	t.Run("removes options with the form", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1"}, nil)
		m.options.EXPECT().ListByFormID(gomock.Any(), "form-1").Return([]entities.FormOption{
			{ID: "opt-1"}, {ID: "opt-2"},
		}, nil)
		m.options.EXPECT().Delete(gomock.Any(), "opt-1").Return(nil)
		m.options.EXPECT().Delete(gomock.Any(), "opt-2").Return(nil)
		m.repo.EXPECT().Delete(gomock.Any(), "form-1").Return(nil)

		if err := uc.Delete(context.Background(), "form-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormUseCase_AddOption(t *testing.T) {
	t.Run("form not found", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "form-404").Return(entities.Form{}, nil)

		_, err := uc.AddOption(context.Background(), "form-404", "svc-a", nil)
		if !errors.Is(err, ErrFormNotFound) {
			t.Fatalf("expected ErrFormNotFound, got %v", err)
		}
	})

	t.Run("empty primary service", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1"}, nil)

		_, err := uc.AddOption(context.Background(), "form-1", " ", nil)
		if !errors.Is(err, ErrInvalidOptionVal) {
			t.Fatalf("expected ErrInvalidOptionVal, got %v", err)
		}
	})

	t.Run("unknown secondary service", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1"}, nil)
		m.services.EXPECT().GetByIDs(gomock.Any(), []string{"svc-a", "svc-x"}).Return([]entities.Service{{ID: "svc-a"}}, nil)

		_, err := uc.AddOption(context.Background(), "form-1", "svc-a", []string{"svc-x"})
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("appends at the next position", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1"}, nil)
		m.services.EXPECT().GetByIDs(gomock.Any(), []string{"svc-a", "svc-b"}).Return([]entities.Service{{ID: "svc-a"}, {ID: "svc-b"}}, nil)
		m.options.EXPECT().ListByFormID(gomock.Any(), "form-1").Return([]entities.FormOption{{ID: "opt-0"}}, nil)
		m.options.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.FormOption) (entities.FormOption, error) {
				if o.Position != 1 {
					t.Fatalf("position: got %d, want 1", o.Position)
				}
				if o.PrimaryServiceID != "svc-a" {
					t.Fatalf("primary: got %q", o.PrimaryServiceID)
				}
				return o, nil
			})

		if _, err := uc.AddOption(context.Background(), "form-1", "svc-a", []string{"svc-b"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormUseCase_UpdateOption(t *testing.T) {
	t.Run("option not found", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.options.EXPECT().GetByID(gomock.Any(), "opt-404").Return(entities.FormOption{}, nil)

		_, err := uc.UpdateOption(context.Background(), "opt-404", "svc-a", nil)
		if !errors.Is(err, ErrFormOptionNotFound) {
			t.Fatalf("expected ErrFormOptionNotFound, got %v", err)
		}
	})

	t.Run("swaps services and keeps position", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.options.EXPECT().GetByID(gomock.Any(), "opt-1").Return(entities.FormOption{ID: "opt-1", FormID: "form-1", Position: 3, PrimaryServiceID: "svc-a"}, nil)
		m.services.EXPECT().GetByIDs(gomock.Any(), []string{"svc-b"}).Return([]entities.Service{{ID: "svc-b"}}, nil)
		m.options.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.FormOption) (entities.FormOption, error) {
				if o.PrimaryServiceID != "svc-b" || o.Position != 3 {
					t.Fatalf("unexpected option %+v", o)
				}
				return o, nil
			})

		if _, err := uc.UpdateOption(context.Background(), "opt-1", "svc-b", nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestFormUseCase_RemoveOption(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.options.EXPECT().GetByID(gomock.Any(), "opt-404").Return(entities.FormOption{}, nil)

		if err := uc.RemoveOption(context.Background(), "opt-404"); !errors.Is(err, ErrFormOptionNotFound) {
			t.Fatalf("expected ErrFormOptionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newFormUseCase(t)
		defer ctrl.Finish()

		m.options.EXPECT().GetByID(gomock.Any(), "opt-1").Return(entities.FormOption{ID: "opt-1"}, nil)
		m.options.EXPECT().Delete(gomock.Any(), "opt-1").Return(nil)

		if err := uc.RemoveOption(context.Background(), "opt-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
