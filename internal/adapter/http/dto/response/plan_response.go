package response

import (
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase"
)

type PlanResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IsPaid    bool      `json:"is_pago"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PlanServiceResponse struct {
	ID             string `json:"id"`
	PlanID         string `json:"plan_id"`
	ServiceID      string `json:"servico"`
	Frequency      int    `json:"frequencia_value"`
	FrequencyLabel string `json:"frequencia"`
}

type PlanDetailResponse struct {
	PlanResponse
	Services []PlanServiceResponse `json:"plano_servicos"`
	Total    float64               `json:"total"`
}

func FromPlan(p entities.Plan) PlanResponse {
	return PlanResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		IsPaid:    p.IsPaid,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func FromPlanService(ps entities.PlanService) PlanServiceResponse {
	return PlanServiceResponse{
		ID:             ps.ID,
		PlanID:         ps.PlanID,
		ServiceID:      ps.ServiceID,
		Frequency:      ps.Frequency,
		FrequencyLabel: ps.FrequencyLabel,
	}
}

func FromPlanDetail(d usecase.PlanDetail) PlanDetailResponse {
	services := make([]PlanServiceResponse, 0, len(d.Services))
	for _, ps := range d.Services {
		services = append(services, FromPlanService(ps))
	}
	return PlanDetailResponse{
		PlanResponse: FromPlan(d.Plan),
		Services:     services,
		Total:        d.Total,
	}
}
