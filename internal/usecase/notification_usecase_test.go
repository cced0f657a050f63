package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type notificationMocks struct {
	repo         *mock_interfaces.MockINotificationRepository
	users        *mock_interfaces.MockIUserRepository
	plans        *mock_interfaces.MockIPlanRepository
	planServices *mock_interfaces.MockIPlanServiceRepository
}

func newNotificationUseCase(t *testing.T) (*NotificationUseCase, notificationMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := notificationMocks{
		repo:         mock_interfaces.NewMockINotificationRepository(ctrl),
		users:        mock_interfaces.NewMockIUserRepository(ctrl),
		plans:        mock_interfaces.NewMockIPlanRepository(ctrl),
		planServices: mock_interfaces.NewMockIPlanServiceRepository(ctrl),
	}
	return NewNotificationUseCase(m.repo, m.users, m.plans, m.planServices), m, ctrl
}

func submissionNotification() entities.Notification {
	meta := entities.IntakeSubmissionMetadata{
		Type: entities.NotificationTypeIntakeSubmission,
		User: entities.IntakeSubmissionUser{
			Name:      "Maria Silva",
			Email:     "maria@example.com",
			Username:  "maria@example.com",
			Password:  "12345678901",
			CPF:       "12345678901",
			Phone:     "11988887777",
			Gender:    "feminino",
			BirthDate: "1990-05-01",
			CEP:       "01310100",
			Company:   "Acme",
		},
		Services: []entities.IntakeSubmissionService{
			{ServiceID: "svc-a", ServiceName: "Limpeza de Pele", Frequency: 2, FrequencyLabel: "2x por mês", Price: 50},
		},
	}
	raw, _ := json.Marshal(meta)
	return entities.Notification{ID: "notif-1", Title: "Novo cadastro de usuário", MetadataRaw: raw}
}

func TestNotificationUseCase_Create(t *testing.T) {
	t.Run("empty title", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "  ", nil)
		if !errors.Is(err, ErrInvalidNotificationVal) {
			t.Fatalf("expected ErrInvalidNotificationVal, got %v", err)
		}
	})

	t.Run("invalid metadata json", func(t *testing.T) {
		uc := NewNotificationUseCase(nil, nil, nil, nil)
		_, err := uc.Create(context.Background(), "Aviso", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidNotificationVal) {
			t.Fatalf("expected ErrInvalidNotificationVal, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.ID == "" || n.Title != "Aviso" || n.IsRead {
					t.Fatalf("unexpected notification %+v", n)
				}
				return n, nil
			})

		if _, err := uc.Create(context.Background(), "Aviso", json.RawMessage(`{"k":1}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().SetRead(gomock.Any(), "notif-404", true).Return(entities.Notification{}, nil)

		_, err := uc.MarkRead(context.Background(), "notif-404")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})
}

func TestNotificationUseCase_Approve(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-404").Return(entities.Notification{}, nil)

		_, _, err := uc.Approve(context.Background(), "notif-404")
		if !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("no metadata is not approvable", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(entities.Notification{ID: "notif-1", Title: "Aviso"}, nil)

		_, _, err := uc.Approve(context.Background(), "notif-1")
		if !errors.Is(err, ErrNotificationNotApprovable) {
			t.Fatalf("expected ErrNotificationNotApprovable, got %v", err)
		}
	})

	t.Run("wrong metadata type is not approvable", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		n := entities.Notification{ID: "notif-1", MetadataRaw: json.RawMessage(`{"type":"other"}`)}
		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(n, nil)

		_, _, err := uc.Approve(context.Background(), "notif-1")
		if !errors.Is(err, ErrNotificationNotApprovable) {
			t.Fatalf("expected ErrNotificationNotApprovable, got %v", err)
		}
	})

	t.Run("email already registered", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(submissionNotification(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "user-9"}, nil)

		_, _, err := uc.Approve(context.Background(), "notif-1")
		if !errors.Is(err, ErrSubmissionUserExists) {
			t.Fatalf("expected ErrSubmissionUserExists, got %v", err)
		}
	})

	t.Run("provisions user, unpaid plan and plan services", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(submissionNotification(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Role != entities.UserRoleCustomer {
					t.Fatalf("role: got %q, want customer", u.Role)
				}
				if u.Email != "maria@example.com" || u.CPF != "12345678901" {
					t.Fatalf("user identity not carried over: %+v", u)
				}
				// Initial password is the submitted CPF.
				if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("12345678901")) != nil {
					t.Fatal("password hash does not match submitted CPF")
				}
				return u, nil
			})
		m.plans.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) {
				if p.IsPaid {
					t.Fatal("plan must start unpaid")
				}
				return p, nil
			})
		m.planServices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ps entities.PlanService) (entities.PlanService, error) {
				if ps.ServiceID != "svc-a" || ps.Frequency != 2 || ps.FrequencyLabel != "2x por mês" {
					t.Fatalf("unexpected plan service %+v", ps)
				}
				return ps, nil
			})
		m.repo.EXPECT().SetRead(gomock.Any(), "notif-1", true).Return(entities.Notification{ID: "notif-1", IsRead: true}, nil)

		user, plan, err := uc.Approve(context.Background(), "notif-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID == "" || plan.UserID != user.ID {
			t.Fatalf("plan not attached to created user: user=%+v plan=%+v", user, plan)
		}
	})

	t.Run("mark-read failure does not undo provisioning", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(submissionNotification(), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		m.users.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) { return u, nil })
		m.plans.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Plan) (entities.Plan, error) { return p, nil })
		m.planServices.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ps entities.PlanService) (entities.PlanService, error) { return ps, nil })
		m.repo.EXPECT().SetRead(gomock.Any(), "notif-1", true).Return(entities.Notification{}, errors.New("db"))

		if _, _, err := uc.Approve(context.Background(), "notif-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestNotificationUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-404").Return(entities.Notification{}, nil)

		if err := uc.Delete(context.Background(), "notif-404"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, m, ctrl := newNotificationUseCase(t)
		defer ctrl.Finish()

		m.repo.EXPECT().GetByID(gomock.Any(), "notif-1").Return(entities.Notification{ID: "notif-1"}, nil)
		m.repo.EXPECT().Delete(gomock.Any(), "notif-1").Return(nil)

		if err := uc.Delete(context.Background(), "notif-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
