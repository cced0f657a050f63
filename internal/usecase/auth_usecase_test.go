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

func hashedUser(t *testing.T, password string) entities.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return entities.User{
		ID:           "user-1",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         entities.UserRoleAdmin,
	}
}

func TestAuthUseCase_Login(t *testing.T) {
	t.Run("empty identifier", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, _, err := uc.Login(context.Background(), " ", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(entities.User{}, nil)

		_, _, err := uc.Login(context.Background(), "ghost@example.com", "secret")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("blocked user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		blocked := hashedUser(t, "secret")
		blocked.Blocked = true
		users.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(blocked, nil)

		_, _, err := uc.Login(context.Background(), "admin@example.com", "secret")
		if !errors.Is(err, ErrUserBlocked) {
			t.Fatalf("expected ErrUserBlocked, got %v", err)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewAuthUseCase(users, nil)

		users.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(hashedUser(t, "secret"), nil)

		_, _, err := uc.Login(context.Background(), "admin@example.com", "wrong")
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("issues a stored session token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(users, sessions)

		users.EXPECT().GetByEmail(gomock.Any(), "admin@example.com").Return(hashedUser(t, "secret"), nil)
		sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session) error {
				if s.Token == "" || s.UserID != "user-1" || s.Role != entities.UserRoleAdmin {
					t.Fatalf("unexpected session %+v", s)
				}
				return nil
			})

		s, user, err := uc.Login(context.Background(), "admin@example.com", "secret")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UserID != user.ID {
			t.Fatalf("session not bound to user: %+v", s)
		}
	})
}

func TestAuthUseCase_Resolve(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		_, err := uc.Resolve(context.Background(), "")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("expired or unknown token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, sessions)

		sessions.EXPECT().Get(gomock.Any(), "tok-404").Return(entities.Session{}, nil)

		_, err := uc.Resolve(context.Background(), "tok-404")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, sessions)

		sessions.EXPECT().Get(gomock.Any(), "tok-1").Return(entities.Session{Token: "tok-1", UserID: "user-1"}, nil)

		s, err := uc.Resolve(context.Background(), "tok-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.UserID != "user-1" {
			t.Fatalf("unexpected session %+v", s)
		}
	})
}

func TestAuthUseCase_Logout(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		uc := NewAuthUseCase(nil, nil)
		if err := uc.Logout(context.Background(), " "); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("deletes the token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		sessions := mock_interfaces.NewMockISessionStore(ctrl)
		uc := NewAuthUseCase(nil, sessions)

		sessions.EXPECT().Delete(gomock.Any(), "tok-1").Return(nil)

		if err := uc.Logout(context.Background(), "tok-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
