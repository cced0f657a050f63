package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserBlocked        = errors.New("user blocked")
	ErrSessionNotFound    = errors.New("session not found")
)

// IAuthUseCase handles console authentication: login issues an opaque bearer
// token saved in the session store, Resolve reads it back on each request, and
// logout clears it.
type IAuthUseCase interface {
	Login(ctx context.Context, identifier, password string) (entities.Session, entities.User, error)
	Resolve(ctx context.Context, token string) (entities.Session, error)
	Logout(ctx context.Context, token string) error
}

type AuthUseCase struct {
	users    interfaces.IUserRepository
	sessions interfaces.ISessionStore
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, sessions interfaces.ISessionStore) *AuthUseCase {
	return &AuthUseCase{users: users, sessions: sessions}
}

func (u *AuthUseCase) Login(ctx context.Context, identifier, password string) (entities.Session, entities.User, error) {
	// Accounts store emails lowercased, so the lookup key follows suit.
	identifier = strings.ToLower(strings.TrimSpace(identifier))
	if identifier == "" || password == "" {
		return entities.Session{}, entities.User{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, identifier)
	if err != nil {
		return entities.Session{}, entities.User{}, err
	}
	if user.ID == "" {
		return entities.Session{}, entities.User{}, ErrInvalidCredentials
	}
	if user.Blocked {
		return entities.Session{}, entities.User{}, ErrUserBlocked
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return entities.Session{}, entities.User{}, ErrInvalidCredentials
	}

	s := entities.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Role:      user.Role,
		CreatedAt: time.Now().UTC(),
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.Session{}, entities.User{}, err
	}
	return s, user, nil
}

func (u *AuthUseCase) Resolve(ctx context.Context, token string) (entities.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.Session{}, ErrSessionNotFound
	}

	s, err := u.sessions.Get(ctx, token)
	if err != nil {
		return entities.Session{}, err
	}
	if s.Token == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrSessionNotFound
	}
	return u.sessions.Delete(ctx, token)
}
