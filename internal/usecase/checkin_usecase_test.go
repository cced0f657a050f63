package usecase

import (
	"context"
	"errors"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validCheckinInput() CheckinInput {
	return CheckinInput{
		State:        entities.CheckinStateConfirmado,
		Phone:        "11988887777",
		ServiceID:    "svc-a",
		ReservedDate: "2026-09-10",
	}
}

func TestCheckinUseCase_Create(t *testing.T) {
	t.Run("missing phone", func(t *testing.T) {
		uc := NewCheckinUseCase(nil)
		in := validCheckinInput()
		in.Phone = " "
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidCheckinVal) {
			t.Fatalf("expected ErrInvalidCheckinVal, got %v", err)
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		uc := NewCheckinUseCase(nil)
		in := validCheckinInput()
		in.State = "agendadíssimo"
		_, err := uc.Create(context.Background(), in)
		if !errors.Is(err, ErrInvalidCheckinState) {
			t.Fatalf("expected ErrInvalidCheckinState, got %v", err)
		}
	})

	t.Run("defaults to pending and generates a hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		in := validCheckinInput()
		in.State = ""
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Checkin) (entities.Checkin, error) {
				if c.State != entities.CheckinStatePendente {
					t.Fatalf("state: got %q, want pendente", c.State)
				}
				if c.Hash == "" || c.Hash == c.ID {
					t.Fatalf("expected distinct hash, got id=%q hash=%q", c.ID, c.Hash)
				}
				return c, nil
			})

		if _, err := uc.Create(context.Background(), in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckinUseCase_GetByHash(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		repo.EXPECT().GetByHash(gomock.Any(), "hash-404").Return(entities.Checkin{}, nil)

		_, err := uc.GetByHash(context.Background(), "hash-404")
		if !errors.Is(err, ErrCheckinNotFound) {
			t.Fatalf("expected ErrCheckinNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		repo.EXPECT().GetByHash(gomock.Any(), "hash-1").Return(entities.Checkin{ID: "chk-1", Hash: "hash-1"}, nil)

		c, err := uc.GetByHash(context.Background(), "hash-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.ID != "chk-1" {
			t.Fatalf("unexpected checkin %+v", c)
		}
	})
}

func TestCheckinUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chk-404").Return(entities.Checkin{}, nil)

		_, err := uc.Update(context.Background(), "chk-404", validCheckinInput())
		if !errors.Is(err, ErrCheckinNotFound) {
			t.Fatalf("expected ErrCheckinNotFound, got %v", err)
		}
	})

	t.Run("keeps identity and hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chk-1").Return(entities.Checkin{ID: "chk-1", Hash: "hash-1", State: entities.CheckinStatePendente}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Checkin) (entities.Checkin, error) {
				if c.ID != "chk-1" || c.Hash != "hash-1" {
					t.Fatalf("identity lost: %+v", c)
				}
				if c.State != entities.CheckinStateConfirmado {
					t.Fatalf("state: got %q, want confirmado", c.State)
				}
				return c, nil
			})

		if _, err := uc.Update(context.Background(), "chk-1", validCheckinInput()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestCheckinUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockICheckinRepository(ctrl)
		uc := NewCheckinUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "chk-404").Return(entities.Checkin{}, nil)

		if err := uc.Delete(context.Background(), "chk-404"); !errors.Is(err, ErrCheckinNotFound) {
			t.Fatalf("expected ErrCheckinNotFound, got %v", err)
		}
	})
}
