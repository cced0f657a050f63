package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validServiceInput() ServiceInput {
	return ServiceInput{
		Name:                "Limpeza de Pele",
		Description:         "Limpeza profunda",
		Gender:              entities.ServiceGenderUnissex,
		PartnerID:           "partner-1",
		Price:               100,
		CollaboratorPercent: 30,
		TransferPercent:     40,
	}
}

func TestServiceUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		in := validServiceInput()
		in.Name = "  "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceVal) {
			t.Fatalf("expected ErrInvalidServiceVal, got %v", err)
		}
	})

	t.Run("missing partner", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		in := validServiceInput()
		in.PartnerID = ""
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidServiceVal) {
			t.Fatalf("expected ErrInvalidServiceVal, got %v", err)
		}
	})

	t.Run("percent above 100", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		in := validServiceInput()
		in.CollaboratorPercent = 130
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
	})

	t.Run("negative transfer percent", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		in := validServiceInput()
		in.TransferPercent = -1
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidPercent) {
			t.Fatalf("expected ErrInvalidPercent, got %v", err)
		}
	})

	t.Run("persists the derived split", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID == "" {
					t.Fatal("expected generated id")
				}
				if math.Abs(s.CollaboratorPrice-70) > 1e-9 {
					t.Fatalf("collaborator price: got %v, want 70", s.CollaboratorPrice)
				}
				if math.Abs(s.PartnerPrice-42) > 1e-9 {
					t.Fatalf("partner price: got %v, want 42", s.PartnerPrice)
				}
				if math.Abs(s.Profit-28) > 1e-9 {
					t.Fatalf("profit: got %v, want 28", s.Profit)
				}
				return s, nil
			})

		s, err := uc.Create(context.Background(), validServiceInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.Name != "Limpeza de Pele" {
			t.Fatalf("unexpected name %q", s.Name)
		}
	})
}

func TestServiceUseCase_Update(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewServiceUseCase(nil)
		_, err := uc.Update(context.Background(), " ", validServiceInput())
		if !errors.Is(err, ErrInvalidServiceID) {
			t.Fatalf("expected ErrInvalidServiceID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-404").Return(entities.Service{}, nil)

		_, err := uc.Update(context.Background(), "svc-404", validServiceInput())
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("recomputes split and keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1", Price: 50}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Service) (entities.Service, error) {
				if s.ID != "svc-1" {
					t.Fatalf("expected id svc-1, got %q", s.ID)
				}
				if math.Abs(s.CollaboratorPrice-70) > 1e-9 {
					t.Fatalf("collaborator price: got %v, want 70", s.CollaboratorPrice)
				}
				return s, nil
			})

		if _, err := uc.Update(context.Background(), "svc-1", validServiceInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestServiceUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-404").Return(entities.Service{}, nil)

		_, err := uc.GetByID(context.Background(), "svc-404")
		if !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("repo error propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, errors.New("db"))

		_, err := uc.GetByID(context.Background(), "svc-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestServiceUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-404").Return(entities.Service{}, nil)

		if err := uc.Delete(context.Background(), "svc-404"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewServiceUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{ID: "svc-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "svc-1").Return(nil)

		if err := uc.Delete(context.Background(), "svc-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
