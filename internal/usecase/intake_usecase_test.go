package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"beautytag/internal/domain/entities"
	mock_interfaces "beautytag/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func intakeOptions() []entities.FormOption {
	primary := entities.Service{ID: "svc-a", Name: "Limpeza de Pele", CollaboratorPrice: 50}
	secondary := entities.Service{ID: "svc-b", Name: "Massagem", CollaboratorPrice: 30}
	return []entities.FormOption{
		{
			ID:                "opt-1",
			FormID:            "form-1",
			PrimaryServiceID:  primary.ID,
			PrimaryService:    &primary,
			SecondaryServices: []entities.Service{secondary},
		},
	}
}

func intakeSessionAt(step int, opts []entities.FormOption) entities.IntakeSession {
	return entities.IntakeSession{
		ID:          "sess-1",
		FormID:      "form-1",
		CurrentStep: step,
		Options:     opts,
	}
}

func validPersonalInfo() entities.IntakePersonalInfo {
	return entities.IntakePersonalInfo{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		CPF:       "123.456.789-01",
		Gender:    "feminino",
		Company:   "Acme",
		WhatsApp:  "(11) 98888-7777",
		BirthDate: "1990-05-01",
		CEP:       "01310-100",
	}
}

type intakeMocks struct {
	sessions *mock_interfaces.MockIIntakeSessionStore
	forms    *mock_interfaces.MockIFormRepository
	users    *mock_interfaces.MockIUserRepository
	notifs   *mock_interfaces.MockINotificationRepository
}

func newIntakeUseCase(t *testing.T) (*IntakeUseCase, intakeMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	m := intakeMocks{
		sessions: mock_interfaces.NewMockIIntakeSessionStore(ctrl),
		forms:    mock_interfaces.NewMockIFormRepository(ctrl),
		users:    mock_interfaces.NewMockIUserRepository(ctrl),
		notifs:   mock_interfaces.NewMockINotificationRepository(ctrl),
	}
	return NewIntakeUseCase(m.sessions, m.forms, m.users, m.notifs), m, ctrl
}

func TestIntakeUseCase_Start(t *testing.T) {
	t.Run("form not found", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.forms.EXPECT().GetByIDPopulated(gomock.Any(), "form-404").Return(entities.Form{}, nil)

		_, err := uc.Start(context.Background(), "form-404")
		if !errors.Is(err, ErrIntakeFormNotFound) {
			t.Fatalf("expected ErrIntakeFormNotFound, got %v", err)
		}
	})

	t.Run("opens session at welcome with fetched catalog", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.forms.EXPECT().GetByIDPopulated(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1", Options: intakeOptions()}, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.AssignableToTypeOf(entities.IntakeSession{})).Return(nil)

		s, err := uc.Start(context.Background(), "form-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.ID == "" || s.CurrentStep != entities.IntakeStepWelcome || len(s.Options) != 1 {
			t.Fatalf("unexpected session: %+v", s)
		}
	})

	t.Run("empty catalog still opens a session", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.forms.EXPECT().GetByIDPopulated(gomock.Any(), "form-1").Return(entities.Form{ID: "form-1"}, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.Start(context.Background(), "form-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(s.Options) != 0 {
			t.Fatalf("expected no options, got %d", len(s.Options))
		}
	})
}

func TestIntakeUseCase_Advance(t *testing.T) {
	t.Run("welcome to consent is unconditional", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(1, intakeOptions()), nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		s, err := uc.Advance(context.Background(), "sess-1", 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.CurrentStep != entities.IntakeStepConsent {
			t.Fatalf("expected step 2, got %d", s.CurrentStep)
		}
	})

	t.Run("consent without accepted terms stays on step 2", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(2, intakeOptions()), nil)

		_, err := uc.Advance(context.Background(), "sess-1", 2)
		if !errors.Is(err, ErrTermsNotAccepted) {
			t.Fatalf("expected ErrTermsNotAccepted, got %v", err)
		}
	})

	t.Run("consent advances after terms accepted", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := intakeSessionAt(2, intakeOptions())
		s.AcceptedTerms = true
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.Advance(context.Background(), "sess-1", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStep != entities.IntakeStepPersonalInfo {
			t.Fatalf("expected step 3, got %d", got.CurrentStep)
		}
	})

	t.Run("stale from step is rejected", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(2, intakeOptions()), nil)

		_, err := uc.Advance(context.Background(), "sess-1", 1)
		if !errors.Is(err, ErrStaleStep) {
			t.Fatalf("expected ErrStaleStep, got %v", err)
		}
	})

	t.Run("empty catalog blocks every forward transition", func(t *testing.T) {
		for _, step := range []int{1, 2} {
			uc, m, ctrl := newIntakeUseCase(t)

			s := intakeSessionAt(step, nil)
			s.AcceptedTerms = true
			m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

			_, err := uc.Advance(context.Background(), "sess-1", step)
			if !errors.Is(err, ErrFormDisabled) {
				t.Fatalf("step %d: expected ErrFormDisabled, got %v", step, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("session not found", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-x").Return(entities.IntakeSession{}, nil)

		_, err := uc.Advance(context.Background(), "sess-x", 1)
		if !errors.Is(err, ErrIntakeSessionNotFound) {
			t.Fatalf("expected ErrIntakeSessionNotFound, got %v", err)
		}
	})
}

func TestIntakeUseCase_Back(t *testing.T) {
	t.Run("keeps captured data", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := intakeSessionAt(4, intakeOptions())
		s.PersonalInfo = validPersonalInfo()
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.IntakeSession) error {
				if saved.PersonalInfo.Name != "Maria Silva" {
					t.Fatalf("personal info lost on back navigation: %+v", saved.PersonalInfo)
				}
				return nil
			},
		)

		got, err := uc.Back(context.Background(), "sess-1", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStep != entities.IntakeStepPersonalInfo {
			t.Fatalf("expected step 3, got %d", got.CurrentStep)
		}
	})

	t.Run("no backward transition from consent", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(2, intakeOptions()), nil)

		_, err := uc.Back(context.Background(), "sess-1", 2)
		if !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("expected ErrInvalidTransition, got %v", err)
		}
	})
}

func TestIntakeUseCase_SubmitPersonalInfo(t *testing.T) {
	t.Run("missing required field", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)

		info := validPersonalInfo()
		info.Company = "   "
		_, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, info)
		if !errors.Is(err, ErrInvalidPersonalInfo) {
			t.Fatalf("expected ErrInvalidPersonalInfo, got %v", err)
		}
	})

	t.Run("malformed email", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)

		info := validPersonalInfo()
		info.Email = "not-an-email"
		_, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, info)
		if !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail, got %v", err)
		}
	})

	t.Run("cpf with wrong digit count", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)

		info := validPersonalInfo()
		info.CPF = "123.456"
		_, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, info)
		if !errors.Is(err, ErrInvalidCPF) {
			t.Fatalf("expected ErrInvalidCPF, got %v", err)
		}
	})

	t.Run("duplicate email stays on step 3", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "existing"}, nil)

		_, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, validPersonalInfo())
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("mixed-case email matches existing account", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{ID: "existing"}, nil)

		info := validPersonalInfo()
		info.Email = "  Maria@Example.com "
		_, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, info)
		if !errors.Is(err, ErrEmailAlreadyRegistered) {
			t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
		}
	})

	t.Run("normalizes and advances to service selection", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(3, intakeOptions()), nil)
		m.users.EXPECT().GetByEmail(gomock.Any(), "maria@example.com").Return(entities.User{}, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, saved entities.IntakeSession) error {
				if saved.PersonalInfo.CPF != "12345678901" {
					t.Fatalf("cpf not normalized: %q", saved.PersonalInfo.CPF)
				}
				if saved.PersonalInfo.WhatsApp != "11988887777" {
					t.Fatalf("whatsapp not normalized: %q", saved.PersonalInfo.WhatsApp)
				}
				if saved.PersonalInfo.CEP != "01310100" {
					t.Fatalf("cep not normalized: %q", saved.PersonalInfo.CEP)
				}
				if saved.PersonalInfo.Email != "maria@example.com" {
					t.Fatalf("email not lowercased: %q", saved.PersonalInfo.Email)
				}
				return nil
			},
		)

		info := validPersonalInfo()
		info.Email = "Maria@Example.com"
		got, err := uc.SubmitPersonalInfo(context.Background(), "sess-1", 3, info)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStep != entities.IntakeStepServiceSelection {
			t.Fatalf("expected step 4, got %d", got.CurrentStep)
		}
	})
}

func TestIntakeUseCase_Selection(t *testing.T) {
	t.Run("swap to secondary replaces the slot entry atomically", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := intakeSessionAt(4, intakeOptions())
		s.Selections = []entities.IntakeSelection{
			{OptionID: "opt-1", ServiceID: "svc-a", ServiceName: "Limpeza de Pele", Price: 50, Frequency: 2, LineTotal: 100},
		}
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.SelectService(context.Background(), "sess-1", "opt-1", "svc-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Selections) != 1 {
			t.Fatalf("expected exactly one slot entry, got %d", len(got.Selections))
		}
		sel := got.Selections[0]
		if sel.ServiceID != "svc-b" || sel.Frequency != 2 || sel.LineTotal != 60 {
			t.Fatalf("unexpected selection after swap: %+v", sel)
		}
		if got.PlanTotal() != 60 {
			t.Fatalf("plan total should reflect only the new entry, got %v", got.PlanTotal())
		}
	})

	t.Run("service outside the option slot is rejected", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(4, intakeOptions()), nil)

		_, err := uc.SelectService(context.Background(), "sess-1", "opt-1", "svc-z")
		if !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
	})

	t.Run("set frequency defaults the slot to the primary service", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(intakeSessionAt(4, intakeOptions()), nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.SetFrequency(context.Background(), "sess-1", "opt-1", 3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		sel := got.Selection("opt-1")
		if sel == nil || sel.ServiceID != "svc-a" || sel.LineTotal != 150 {
			t.Fatalf("unexpected selection: %+v", sel)
		}
		if got.PlanTotal() != 150 {
			t.Fatalf("expected plan total 150, got %v", got.PlanTotal())
		}
	})

	t.Run("unsetting frequency makes the slot inert but keeps it listed", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := intakeSessionAt(4, intakeOptions())
		s.Selections = []entities.IntakeSelection{
			{OptionID: "opt-1", ServiceID: "svc-a", Price: 50, Frequency: 2, LineTotal: 100},
		}
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.SetFrequency(context.Background(), "sess-1", "opt-1", 0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Selections) != 1 {
			t.Fatalf("slot should stay listed, got %d entries", len(got.Selections))
		}
		if got.PlanTotal() != 0 {
			t.Fatalf("inert slot should not contribute, got total %v", got.PlanTotal())
		}
	})

	t.Run("frequency out of range", func(t *testing.T) {
		uc, _, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		_, err := uc.SetFrequency(context.Background(), "sess-1", "opt-1", 5)
		if !errors.Is(err, ErrInvalidFrequency) {
			t.Fatalf("expected ErrInvalidFrequency, got %v", err)
		}
	})

	t.Run("remove selection drops the slot entry", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := intakeSessionAt(4, intakeOptions())
		s.Selections = []entities.IntakeSelection{
			{OptionID: "opt-1", ServiceID: "svc-a", Price: 50, Frequency: 2, LineTotal: 100},
		}
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil)

		got, err := uc.RemoveSelection(context.Background(), "sess-1", "opt-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got.Selections) != 0 {
			t.Fatalf("expected no selections, got %d", len(got.Selections))
		}
	})
}

func TestIntakeUseCase_Submit(t *testing.T) {
	submittableSession := func() entities.IntakeSession {
		s := intakeSessionAt(4, intakeOptions())
		s.PersonalInfo = entities.IntakePersonalInfo{
			Name: "Maria Silva", Email: "maria@example.com", CPF: "12345678901",
			Gender: "feminino", Company: "Acme", WhatsApp: "11988887777",
			BirthDate: "1990-05-01", CEP: "01310100",
		}
		s.Selections = []entities.IntakeSelection{
			{OptionID: "opt-1", ServiceID: "A", ServiceName: "Limpeza", Price: 50, Frequency: 2, LineTotal: 100},
			{OptionID: "opt-2", ServiceID: "B", ServiceName: "Massagem", Price: 30, Frequency: 1, LineTotal: 30},
		}
		return s
	}

	t.Run("aggregates one submission payload and reaches confirmation", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		if s.PlanTotal() != 130 {
			t.Fatalf("fixture plan total should be 130, got %v", s.PlanTotal())
		}

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)
		m.sessions.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		m.notifs.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, n entities.Notification) (entities.Notification, error) {
				if n.Title != "Novo cadastro de usuário" {
					t.Fatalf("unexpected title: %q", n.Title)
				}
				var meta entities.IntakeSubmissionMetadata
				if err := json.Unmarshal(n.MetadataRaw, &meta); err != nil {
					t.Fatalf("metadata unmarshal: %v", err)
				}
				if meta.User.Email != "maria@example.com" || meta.User.Password != "12345678901" {
					t.Fatalf("unexpected user payload: %+v", meta.User)
				}
				if len(meta.Services) != 2 {
					t.Fatalf("expected 2 services, got %d", len(meta.Services))
				}
				first, second := meta.Services[0], meta.Services[1]
				if first.ServiceID != "A" || first.Frequency != 2 || first.Price != 50 || first.FrequencyLabel != "2x por mês" {
					t.Fatalf("unexpected first service: %+v", first)
				}
				if second.ServiceID != "B" || second.Frequency != 1 || second.Price != 30 {
					t.Fatalf("unexpected second service: %+v", second)
				}
				return n, nil
			},
		)
		m.sessions.EXPECT().Delete(gomock.Any(), "sess-1").Return(nil)
		m.sessions.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)

		got, err := uc.Submit(context.Background(), "sess-1", 4)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.CurrentStep != entities.IntakeStepConfirmation || !got.Submitted {
			t.Fatalf("expected terminal session, got %+v", got)
		}
	})

	t.Run("in-flight submission consumes the affordance", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(submittableSession(), nil)
		m.sessions.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(false, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrSubmissionInFlight) {
			t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
		}
	})

	t.Run("failed sink call leaves the session on step 4 and releases the lock", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(submittableSession(), nil)
		m.sessions.EXPECT().AcquireSubmitLock(gomock.Any(), "sess-1").Return(true, nil)
		m.notifs.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Notification{}, errors.New("sink down"))
		m.sessions.EXPECT().ReleaseSubmitLock(gomock.Any(), "sess-1").Return(nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if err == nil || err.Error() != "sink down" {
			t.Fatalf("expected sink error, got %v", err)
		}
	})

	t.Run("touched slot without frequency blocks submission", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		s.Selections[1].Frequency = 0
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrIncompleteSelection) {
			t.Fatalf("expected ErrIncompleteSelection, got %v", err)
		}
	})

	t.Run("no selections blocks submission", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		s.Selections = nil
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrNoServicesSelected) {
			t.Fatalf("expected ErrNoServicesSelected, got %v", err)
		}
	})

	t.Run("already submitted session is idempotent", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		s.Submitted = true
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrAlreadySubmitted) {
			t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
		}
	})

	t.Run("empty catalog blocks submission", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		s.Options = nil
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrFormDisabled) {
			t.Fatalf("expected ErrFormDisabled, got %v", err)
		}
	})

	t.Run("stale submit after confirmation does not resubmit", func(t *testing.T) {
		uc, m, ctrl := newIntakeUseCase(t)
		defer ctrl.Finish()

		s := submittableSession()
		s.CurrentStep = entities.IntakeStepConfirmation
		m.sessions.EXPECT().Get(gomock.Any(), "sess-1").Return(s, nil)

		_, err := uc.Submit(context.Background(), "sess-1", 4)
		if !errors.Is(err, ErrStaleStep) {
			t.Fatalf("expected ErrStaleStep, got %v", err)
		}
	})
}
