package usecase

import (
	"context"
	"errors"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-404").Return(entities.User{}, nil)

		_, err := uc.GetByID(context.Background(), "user-404")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo)

	repo.EXPECT().List(gomock.Any(), entities.UserRoleCustomer).Return([]entities.User{{ID: "user-1"}}, nil)

	users, err := uc.List(context.Background(), entities.UserRoleCustomer)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
}

func TestUserUseCase_SetBlocked(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-404").Return(entities.User{}, nil)

		_, err := uc.SetBlocked(context.Background(), "user-404", true)
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("flips the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if !u.Blocked {
					t.Fatal("expected blocked true")
				}
				return u, nil
			})

		u, err := uc.SetBlocked(context.Background(), "user-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !u.Blocked {
			t.Fatal("expected blocked user returned")
		}
	})
}

func TestUserUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-404").Return(entities.User{}, nil)

		if err := uc.Delete(context.Background(), "user-404"); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "user-1").Return(nil)

		if err := uc.Delete(context.Background(), "user-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func validUserInput() UserInput {
	return UserInput{
		Name:     "Joana Prado",
		Email:    "joana@example.com",
		Password: "s3nh4-forte",
		Role:     entities.UserRolePartner,
		Phone:    "11988887777",
	}
}

func TestUserUseCase_Create(t *testing.T) {
	t.Run("missing password", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		in := validUserInput()
		in.Password = ""
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidUserVal) {
			t.Fatalf("expected ErrInvalidUserVal, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		uc := NewUserUseCase(nil)
		in := validUserInput()
		in.Role = "gerente"
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidUserRole) {
			t.Fatalf("expected ErrInvalidUserRole, got %v", err)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "joana@example.com").Return(entities.User{ID: "user-1"}, nil)

		if _, err := uc.Create(context.Background(), validUserInput()); !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("hashes password and lowercases email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByEmail(gomock.Any(), "joana@example.com").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Email != "joana@example.com" {
					t.Fatalf("expected lowercased email, got %q", u.Email)
				}
				if u.Username != "joana@example.com" {
					t.Fatalf("expected username to default to email, got %q", u.Username)
				}
				if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3nh4-forte")); err != nil {
					t.Fatalf("stored hash does not match password: %v", err)
				}
				if u.ID == "" || u.CreatedAt.IsZero() {
					t.Fatal("expected id and timestamps set")
				}
				return u, nil
			})

		in := validUserInput()
		in.Email = "  Joana@Example.com "
		user, err := uc.Create(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Role != entities.UserRolePartner {
			t.Fatalf("unexpected role %q", user.Role)
		}
	})
}

func TestUserUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-404").Return(entities.User{}, nil)

		if _, err := uc.Update(context.Background(), "user-404", validUserInput()); !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("empty password keeps stored hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		stored := entities.User{ID: "user-1", Email: "joana@example.com", PasswordHash: "$2a$10$stored"}
		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(stored, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.PasswordHash != "$2a$10$stored" {
					t.Fatalf("expected stored hash kept, got %q", u.PasswordHash)
				}
				if u.Name != "Joana Prado" {
					t.Fatalf("expected profile applied, got %q", u.Name)
				}
				return u, nil
			})

		in := validUserInput()
		in.Password = ""
		if _, err := uc.Update(context.Background(), "user-1", in); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("new email must be free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewUserUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1", Email: "old@example.com"}, nil)
		repo.EXPECT().GetByEmail(gomock.Any(), "joana@example.com").Return(entities.User{ID: "user-2"}, nil)

		if _, err := uc.Update(context.Background(), "user-1", validUserInput()); !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})
}
