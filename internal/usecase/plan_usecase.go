package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound        = errors.New("plan not found")
	ErrPlanServiceNotFound = errors.New("plan service not found")
	ErrInvalidPlanID       = errors.New("invalid plan id")
	ErrInvalidPlanUserID   = errors.New("invalid plan user id")
	ErrPlanAlreadyPaid     = errors.New("plan already paid")
	ErrPlanEmpty           = errors.New("plan has no services")
	ErrInvalidPayload      = errors.New("invalid payment payload")
	ErrGatewayMissing      = errors.New("payment gateway not configured")
)

// PlanDetail is a plan with its service lines and the charge total derived
// from the current collaborator prices.
type PlanDetail struct {
	Plan     entities.Plan
	Services []entities.PlanService
	Total    float64
}

// IPlanUseCase exposes plan operations, including line management and the
// payment flow that marks a plan paid after the gateway approves the charge.
type IPlanUseCase interface {
	Create(ctx context.Context, userID string) (entities.Plan, error)
	GetByID(ctx context.Context, id string) (PlanDetail, error)
	GetByUserID(ctx context.Context, userID string) (PlanDetail, error)
	AddService(ctx context.Context, planID, serviceID string, frequency int) (entities.PlanService, error)
	UpdateService(ctx context.Context, planID, lineID, serviceID string, frequency int) (entities.PlanService, error)
	RemoveService(ctx context.Context, planID, lineID string) error
	Pay(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.Plan, error)
	Delete(ctx context.Context, id string) error
}

type PlanUseCase struct {
	repo         interfaces.IPlanRepository
	planServices interfaces.IPlanServiceRepository
	services     interfaces.IServiceRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPlanUseCase = (*PlanUseCase)(nil)

func NewPlanUseCase(
	repo interfaces.IPlanRepository,
	planServices interfaces.IPlanServiceRepository,
	services interfaces.IServiceRepository,
	gateway interfaces.IPaymentGateway,
) *PlanUseCase {
	return &PlanUseCase{repo: repo, planServices: planServices, services: services, gateway: gateway}
}

func (u *PlanUseCase) Create(ctx context.Context, userID string) (entities.Plan, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Plan{}, ErrInvalidPlanUserID
	}

	now := time.Now().UTC()
	return u.repo.Create(ctx, entities.Plan{
		ID:        uuid.NewString(),
		UserID:    userID,
		IsPaid:    false,
		CreatedAt: now,
		UpdatedAt: now,
	})
}

func (u *PlanUseCase) GetByID(ctx context.Context, id string) (PlanDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return PlanDetail{}, ErrInvalidPlanID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return PlanDetail{}, err
	}
	if p.ID == "" {
		return PlanDetail{}, ErrPlanNotFound
	}
	return u.detail(ctx, p)
}

func (u *PlanUseCase) GetByUserID(ctx context.Context, userID string) (PlanDetail, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return PlanDetail{}, ErrInvalidPlanUserID
	}

	p, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return PlanDetail{}, err
	}
	if p.ID == "" {
		return PlanDetail{}, ErrPlanNotFound
	}
	return u.detail(ctx, p)
}

// AddService appends a service line to the plan. Frequency is monthly usage,
// 1..4, and the label is derived from it.
func (u *PlanUseCase) AddService(ctx context.Context, planID, serviceID string, frequency int) (entities.PlanService, error) {
	planID = strings.TrimSpace(planID)
	svc, err := u.lineService(ctx, planID, serviceID, frequency)
	if err != nil {
		return entities.PlanService{}, err
	}

	now := time.Now().UTC()
	line, err := u.planServices.Create(ctx, entities.PlanService{
		ID:             uuid.NewString(),
		PlanID:         planID,
		ServiceID:      svc.ID,
		Frequency:      frequency,
		FrequencyLabel: fmt.Sprintf("%dx por mês", frequency),
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return entities.PlanService{}, err
	}
	log.Printf("[plan][usecase] service line added plan_id=%s plan_service_id=%s servico=%s", planID, line.ID, svc.ID)
	return line, nil
}

// UpdateService rewrites a line's service and frequency. The line must belong
// to the plan in the URL.
func (u *PlanUseCase) UpdateService(ctx context.Context, planID, lineID, serviceID string, frequency int) (entities.PlanService, error) {
	planID = strings.TrimSpace(planID)
	svc, err := u.lineService(ctx, planID, serviceID, frequency)
	if err != nil {
		return entities.PlanService{}, err
	}

	line, err := u.planLine(ctx, planID, lineID)
	if err != nil {
		return entities.PlanService{}, err
	}

	line.ServiceID = svc.ID
	line.Frequency = frequency
	line.FrequencyLabel = fmt.Sprintf("%dx por mês", frequency)
	updated, err := u.planServices.Update(ctx, line)
	if err != nil {
		return entities.PlanService{}, err
	}
	if updated.ID == "" {
		return entities.PlanService{}, ErrPlanServiceNotFound
	}
	return updated, nil
}

func (u *PlanUseCase) RemoveService(ctx context.Context, planID, lineID string) error {
	planID = strings.TrimSpace(planID)
	if err := u.ensurePlan(ctx, planID); err != nil {
		return err
	}
	line, err := u.planLine(ctx, planID, lineID)
	if err != nil {
		return err
	}
	return u.planServices.Delete(ctx, line.ID)
}

// lineService validates the pieces shared by AddService and UpdateService:
// the plan exists, the frequency is in range and the service is real.
func (u *PlanUseCase) lineService(ctx context.Context, planID, serviceID string, frequency int) (entities.Service, error) {
	if frequency < 1 || frequency > 4 {
		return entities.Service{}, ErrInvalidFrequency
	}
	if err := u.ensurePlan(ctx, planID); err != nil {
		return entities.Service{}, err
	}

	serviceID = strings.TrimSpace(serviceID)
	svc, err := u.services.GetByID(ctx, serviceID)
	if err != nil {
		return entities.Service{}, err
	}
	if svc.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return svc, nil
}

func (u *PlanUseCase) ensurePlan(ctx context.Context, planID string) error {
	if planID == "" {
		return ErrInvalidPlanID
	}
	p, err := u.repo.GetByID(ctx, planID)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPlanNotFound
	}
	return nil
}

func (u *PlanUseCase) planLine(ctx context.Context, planID, lineID string) (entities.PlanService, error) {
	lineID = strings.TrimSpace(lineID)
	if lineID == "" {
		return entities.PlanService{}, ErrPlanServiceNotFound
	}
	line, err := u.planServices.GetByID(ctx, lineID)
	if err != nil {
		return entities.PlanService{}, err
	}
	if line.ID == "" || line.PlanID != planID {
		return entities.PlanService{}, ErrPlanServiceNotFound
	}
	return line, nil
}

// Pay charges the plan total through the payment gateway and flips is_pago on
// approval. The amount is always the server-side total; whatever the caller's
// payload says is overwritten, mirroring how the gateway treats the stored
// record as the source of truth.
func (u *PlanUseCase) Pay(ctx context.Context, id string, paymentPayload json.RawMessage) (entities.Plan, error) {
	if u.gateway == nil {
		return entities.Plan{}, ErrGatewayMissing
	}

	detail, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Plan{}, err
	}
	if detail.Plan.IsPaid {
		return entities.Plan{}, ErrPlanAlreadyPaid
	}
	if len(detail.Services) == 0 {
		return entities.Plan{}, ErrPlanEmpty
	}

	if len(paymentPayload) == 0 {
		paymentPayload = json.RawMessage("{}")
	}
	var reqMap map[string]any
	if err := json.Unmarshal(paymentPayload, &reqMap); err != nil {
		return entities.Plan{}, ErrInvalidPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = detail.Plan.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Plano %s", detail.Plan.ID)
	}
	reqMap["transaction_amount"] = detail.Total
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Plan{}, err
	}

	log.Printf("[plan][usecase] charging plan plan_id=%s amount=%.2f", detail.Plan.ID, detail.Total)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[plan][usecase] payment gateway failed plan_id=%s err=%v", detail.Plan.ID, err)
		return entities.Plan{}, err
	}
	log.Printf("[plan][usecase] payment gateway success plan_id=%s provider_payment_id=%s provider_status=%s", detail.Plan.ID, providerPaymentID, providerStatus)

	updated, err := u.repo.SetPaid(ctx, detail.Plan.ID, true)
	if err != nil {
		return entities.Plan{}, err
	}
	if updated.ID == "" {
		return entities.Plan{}, ErrPlanNotFound
	}
	return updated, nil
}

func (u *PlanUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidPlanID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p.ID == "" {
		return ErrPlanNotFound
	}

	// Lines go first so a failed delete never strands orphaned plan_services
	// rows without their plan.
	lines, err := u.planServices.ListByPlanID(ctx, id)
	if err != nil {
		return err
	}
	for _, l := range lines {
		if err := u.planServices.Delete(ctx, l.ID); err != nil {
			return err
		}
	}
	return u.repo.Delete(ctx, id)
}

func (u *PlanUseCase) detail(ctx context.Context, p entities.Plan) (PlanDetail, error) {
	lines, err := u.planServices.ListByPlanID(ctx, p.ID)
	if err != nil {
		return PlanDetail{}, err
	}

	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ServiceID)
	}
	svcs, err := u.services.GetByIDs(ctx, ids)
	if err != nil {
		return PlanDetail{}, err
	}
	priceByID := make(map[string]float64, len(svcs))
	for _, s := range svcs {
		priceByID[s.ID] = s.CollaboratorPrice
	}

	total := 0.0
	for _, l := range lines {
		total += priceByID[l.ServiceID] * float64(l.Frequency)
	}
	return PlanDetail{Plan: p, Services: lines, Total: total}, nil
}
