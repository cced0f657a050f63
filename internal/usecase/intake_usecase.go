package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/mail"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrIntakeSessionNotFound  = errors.New("intake session not found")
	ErrIntakeFormNotFound     = errors.New("intake form not found")
	ErrFormDisabled           = errors.New("form has no enabled options")
	ErrStaleStep              = errors.New("request is stale for the session's current step")
	ErrInvalidTransition      = errors.New("invalid step transition")
	ErrTermsNotAccepted       = errors.New("terms must be accepted to continue")
	ErrInvalidPersonalInfo    = errors.New("invalid personal info")
	ErrInvalidEmail           = errors.New("invalid email")
	ErrInvalidCPF             = errors.New("invalid cpf")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrUnknownOption          = errors.New("unknown form option")
	ErrUnknownService         = errors.New("service does not belong to option")
	ErrInvalidFrequency       = errors.New("invalid frequency")
	ErrIncompleteSelection    = errors.New("every touched option needs a service and a frequency")
	ErrNoServicesSelected     = errors.New("at least one service must be selected")
	ErrSubmissionInFlight     = errors.New("submission already in flight")
	ErrAlreadySubmitted       = errors.New("session already submitted")
)

// IIntakeUseCase drives the public five-step intake wizard:
// welcome(1), consent(2), personal-info(3), service-selection(4), confirmation(5).
//
// Every step-changing operation carries fromStep, the step the client believes
// it is on. A mismatch with the stored session means a late or duplicated
// request and is rejected with ErrStaleStep instead of corrupting the session.
type IIntakeUseCase interface {
	Start(ctx context.Context, formID string) (entities.IntakeSession, error)
	Get(ctx context.Context, sessionID string) (entities.IntakeSession, error)
	Advance(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error)
	Back(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error)
	AcceptTerms(ctx context.Context, sessionID string, accepted bool) (entities.IntakeSession, error)
	SubmitPersonalInfo(ctx context.Context, sessionID string, fromStep int, info entities.IntakePersonalInfo) (entities.IntakeSession, error)
	SelectService(ctx context.Context, sessionID, optionID, serviceID string) (entities.IntakeSession, error)
	SetFrequency(ctx context.Context, sessionID, optionID string, frequency int) (entities.IntakeSession, error)
	RemoveSelection(ctx context.Context, sessionID, optionID string) (entities.IntakeSession, error)
	Submit(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error)
}

type IntakeUseCase struct {
	sessions  interfaces.IIntakeSessionStore
	forms     interfaces.IFormRepository
	users     interfaces.IUserRepository
	notifRepo interfaces.INotificationRepository
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(
	sessions interfaces.IIntakeSessionStore,
	forms interfaces.IFormRepository,
	users interfaces.IUserRepository,
	notifRepo interfaces.INotificationRepository,
) *IntakeUseCase {
	return &IntakeUseCase{sessions: sessions, forms: forms, users: users, notifRepo: notifRepo}
}

// Start fetches the form's option catalog once and opens a session at the
// welcome step. A form with zero options still opens a session; the flow is
// blocked at the first forward transition instead.
func (u *IntakeUseCase) Start(ctx context.Context, formID string) (entities.IntakeSession, error) {
	formID = strings.TrimSpace(formID)
	if formID == "" {
		return entities.IntakeSession{}, ErrIntakeFormNotFound
	}

	form, err := u.forms.GetByIDPopulated(ctx, formID)
	if err != nil {
		log.Printf("[intake][usecase] form fetch failed form_id=%s err=%v", formID, err)
		return entities.IntakeSession{}, err
	}
	if form.ID == "" {
		return entities.IntakeSession{}, ErrIntakeFormNotFound
	}

	now := time.Now().UTC()
	s := entities.IntakeSession{
		ID:          uuid.NewString(),
		FormID:      form.ID,
		CurrentStep: entities.IntakeStepWelcome,
		Options:     form.Options,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return entities.IntakeSession{}, err
	}
	log.Printf("[intake][usecase] session started session_id=%s form_id=%s options=%d", s.ID, form.ID, len(s.Options))
	return s, nil
}

func (u *IntakeUseCase) Get(ctx context.Context, sessionID string) (entities.IntakeSession, error) {
	return u.load(ctx, sessionID)
}

// Advance moves the wizard forward from the welcome or consent step. Steps 3
// and 4 advance only through SubmitPersonalInfo and Submit, which carry the
// data their guards need.
func (u *IntakeUseCase) Advance(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != fromStep {
		return entities.IntakeSession{}, ErrStaleStep
	}
	if len(s.Options) == 0 {
		return entities.IntakeSession{}, ErrFormDisabled
	}

	switch s.CurrentStep {
	case entities.IntakeStepWelcome:
		// Unconditional; the informational overlay never blocks once dismissed.
	case entities.IntakeStepConsent:
		if !s.AcceptedTerms {
			return entities.IntakeSession{}, ErrTermsNotAccepted
		}
	default:
		return entities.IntakeSession{}, ErrInvalidTransition
	}

	s.CurrentStep++
	return s, u.save(ctx, &s)
}

// Back is unconditional and keeps previously entered data, so re-entering a
// step pre-fills the captured values.
func (u *IntakeUseCase) Back(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != fromStep {
		return entities.IntakeSession{}, ErrStaleStep
	}
	if s.CurrentStep != entities.IntakeStepPersonalInfo && s.CurrentStep != entities.IntakeStepServiceSelection {
		return entities.IntakeSession{}, ErrInvalidTransition
	}

	s.CurrentStep--
	return s, u.save(ctx, &s)
}

func (u *IntakeUseCase) AcceptTerms(ctx context.Context, sessionID string, accepted bool) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != entities.IntakeStepConsent {
		return entities.IntakeSession{}, ErrStaleStep
	}

	s.AcceptedTerms = accepted
	return s, u.save(ctx, &s)
}

// SubmitPersonalInfo validates the step-3 fields, checks that the email is not
// already a registered account, normalizes CPF/WhatsApp/CEP to digits only and
// advances to service selection. On any guard failure the session stays on
// step 3.
func (u *IntakeUseCase) SubmitPersonalInfo(ctx context.Context, sessionID string, fromStep int, info entities.IntakePersonalInfo) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != fromStep || s.CurrentStep != entities.IntakeStepPersonalInfo {
		return entities.IntakeSession{}, ErrStaleStep
	}
	if len(s.Options) == 0 {
		return entities.IntakeSession{}, ErrFormDisabled
	}

	info.Name = strings.TrimSpace(info.Name)
	// Email keys the uniqueness check and the account created on approval, so
	// it is stored lowercased.
	info.Email = strings.ToLower(strings.TrimSpace(info.Email))
	info.Gender = strings.TrimSpace(info.Gender)
	info.Company = strings.TrimSpace(info.Company)
	info.BirthDate = strings.TrimSpace(info.BirthDate)
	if info.Name == "" || info.Email == "" || info.CPF == "" || info.Gender == "" ||
		info.Company == "" || info.WhatsApp == "" || info.BirthDate == "" || info.CEP == "" {
		return entities.IntakeSession{}, ErrInvalidPersonalInfo
	}
	if _, err := mail.ParseAddress(info.Email); err != nil {
		return entities.IntakeSession{}, ErrInvalidEmail
	}

	info.CPF = digitsOnly(info.CPF)
	info.WhatsApp = digitsOnly(info.WhatsApp)
	info.CEP = digitsOnly(info.CEP)
	if len(info.CPF) != 11 {
		return entities.IntakeSession{}, ErrInvalidCPF
	}

	existing, err := u.users.GetByEmail(ctx, info.Email)
	if err != nil {
		log.Printf("[intake][usecase] email uniqueness check failed session_id=%s err=%v", s.ID, err)
		return entities.IntakeSession{}, err
	}
	if existing.ID != "" {
		return entities.IntakeSession{}, ErrEmailAlreadyRegistered
	}

	s.PersonalInfo = info
	s.CurrentStep = entities.IntakeStepServiceSelection
	return s, u.save(ctx, &s)
}

// SelectService sets the active service for one option slot. Swapping replaces
// the slot's entry in a single session write, so the selection list never
// holds two entries for the same slot. A frequency already chosen for the slot
// carries over to the new service.
func (u *IntakeUseCase) SelectService(ctx context.Context, sessionID, optionID, serviceID string) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != entities.IntakeStepServiceSelection {
		return entities.IntakeSession{}, ErrStaleStep
	}

	opt := s.Option(optionID)
	if opt == nil {
		return entities.IntakeSession{}, ErrUnknownOption
	}
	svc := resolveOptionService(opt, serviceID)
	if svc == nil {
		return entities.IntakeSession{}, ErrUnknownService
	}

	frequency := 0
	if prev := s.Selection(optionID); prev != nil {
		frequency = prev.Frequency
	}
	s.RemoveSelection(optionID)
	s.Selections = append(s.Selections, entities.IntakeSelection{
		OptionID:    optionID,
		ServiceID:   svc.ID,
		ServiceName: svc.Name,
		Price:       svc.CollaboratorPrice,
		Frequency:   frequency,
		LineTotal:   svc.CollaboratorPrice * float64(frequency),
	})
	return s, u.save(ctx, &s)
}

// SetFrequency chooses how many times per month the slot's active service is
// used (1..4). Zero unsets the frequency: the slot stays listed but stops
// contributing to the plan total.
func (u *IntakeUseCase) SetFrequency(ctx context.Context, sessionID, optionID string, frequency int) (entities.IntakeSession, error) {
	if frequency < 0 || frequency > 4 {
		return entities.IntakeSession{}, ErrInvalidFrequency
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != entities.IntakeStepServiceSelection {
		return entities.IntakeSession{}, ErrStaleStep
	}

	opt := s.Option(optionID)
	if opt == nil {
		return entities.IntakeSession{}, ErrUnknownOption
	}

	sel := s.Selection(optionID)
	if sel == nil {
		// Slot untouched so far: the primary service is the default active one.
		svc := opt.PrimaryService
		if svc == nil {
			return entities.IntakeSession{}, ErrUnknownService
		}
		s.Selections = append(s.Selections, entities.IntakeSelection{
			OptionID:    optionID,
			ServiceID:   svc.ID,
			ServiceName: svc.Name,
			Price:       svc.CollaboratorPrice,
		})
		sel = s.Selection(optionID)
	}

	sel.Frequency = frequency
	sel.LineTotal = sel.Price * float64(frequency)
	return s, u.save(ctx, &s)
}

// RemoveSelection drops the slot's entry entirely, for clients that support
// explicit removal.
func (u *IntakeUseCase) RemoveSelection(ctx context.Context, sessionID, optionID string) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.CurrentStep != entities.IntakeStepServiceSelection {
		return entities.IntakeSession{}, ErrStaleStep
	}

	s.RemoveSelection(optionID)
	return s, u.save(ctx, &s)
}

// Submit performs the wizard's single aggregated submission: personal info
// plus the selection list, sent once to the notification sink. A Redis
// set-if-absent lock consumes the submit affordance while the call is in
// flight, and the Submitted flag makes re-submission idempotent. On failure
// the session stays on step 4 and the lock is released; nothing is retried
// automatically.
func (u *IntakeUseCase) Submit(ctx context.Context, sessionID string, fromStep int) (entities.IntakeSession, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.Submitted {
		return entities.IntakeSession{}, ErrAlreadySubmitted
	}
	if s.CurrentStep != fromStep || s.CurrentStep != entities.IntakeStepServiceSelection {
		return entities.IntakeSession{}, ErrStaleStep
	}
	if len(s.Options) == 0 {
		return entities.IntakeSession{}, ErrFormDisabled
	}

	selected := make([]entities.IntakeSubmissionService, 0, len(s.Selections))
	for _, sel := range s.Selections {
		if sel.Frequency == 0 {
			// A touched slot without a frequency is an incomplete choice, not
			// an inert one, at submit time.
			return entities.IntakeSession{}, ErrIncompleteSelection
		}
		selected = append(selected, entities.IntakeSubmissionService{
			ServiceID:      sel.ServiceID,
			ServiceName:    sel.ServiceName,
			Frequency:      sel.Frequency,
			FrequencyLabel: fmt.Sprintf("%dx por mês", sel.Frequency),
			Price:          sel.Price,
		})
	}
	if len(selected) == 0 {
		return entities.IntakeSession{}, ErrNoServicesSelected
	}

	locked, err := u.sessions.AcquireSubmitLock(ctx, s.ID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if !locked {
		return entities.IntakeSession{}, ErrSubmissionInFlight
	}
	defer func() {
		if rErr := u.sessions.ReleaseSubmitLock(ctx, s.ID); rErr != nil {
			log.Printf("[intake][usecase] submit lock release failed session_id=%s err=%v", s.ID, rErr)
		}
	}()

	metadata := entities.IntakeSubmissionMetadata{
		Type: entities.NotificationTypeIntakeSubmission,
		User: entities.IntakeSubmissionUser{
			Name:      s.PersonalInfo.Name,
			Email:     s.PersonalInfo.Email,
			Username:  s.PersonalInfo.Email,
			Password:  s.PersonalInfo.CPF,
			CPF:       s.PersonalInfo.CPF,
			Phone:     s.PersonalInfo.WhatsApp,
			Gender:    s.PersonalInfo.Gender,
			BirthDate: s.PersonalInfo.BirthDate,
			CEP:       s.PersonalInfo.CEP,
			Company:   s.PersonalInfo.Company,
		},
		Services: selected,
	}
	raw, err := json.Marshal(metadata)
	if err != nil {
		return entities.IntakeSession{}, err
	}

	now := time.Now().UTC()
	if _, err := u.notifRepo.Create(ctx, entities.Notification{
		ID:          uuid.NewString(),
		Title:       "Novo cadastro de usuário",
		MetadataRaw: raw,
		CreatedAt:   now,
		UpdatedAt:   now,
	}); err != nil {
		log.Printf("[intake][usecase] submission failed session_id=%s err=%v", s.ID, err)
		return entities.IntakeSession{}, err
	}

	s.Submitted = true
	s.CurrentStep = entities.IntakeStepConfirmation
	// The session is discarded on success; the returned value is the terminal
	// snapshot for the confirmation response.
	if err := u.sessions.Delete(ctx, s.ID); err != nil {
		log.Printf("[intake][usecase] session cleanup failed session_id=%s err=%v", s.ID, err)
	}
	log.Printf("[intake][usecase] submission success session_id=%s services=%d total=%.2f", s.ID, len(selected), s.PlanTotal())
	return s, nil
}

func (u *IntakeUseCase) load(ctx context.Context, sessionID string) (entities.IntakeSession, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.IntakeSession{}, ErrIntakeSessionNotFound
	}
	s, err := u.sessions.Get(ctx, sessionID)
	if err != nil {
		return entities.IntakeSession{}, err
	}
	if s.ID == "" {
		return entities.IntakeSession{}, ErrIntakeSessionNotFound
	}
	return s, nil
}

func (u *IntakeUseCase) save(ctx context.Context, s *entities.IntakeSession) error {
	s.UpdatedAt = time.Now().UTC()
	return u.sessions.Save(ctx, *s)
}

func resolveOptionService(opt *entities.FormOption, serviceID string) *entities.Service {
	if opt.PrimaryService != nil && opt.PrimaryService.ID == serviceID {
		return opt.PrimaryService
	}
	for i := range opt.SecondaryServices {
		if opt.SecondaryServices[i].ID == serviceID {
			return &opt.SecondaryServices[i]
		}
	}
	return nil
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
