package request

import (
	"time"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase"
)

// CheckinRequest is the console payload for creating or updating a scheduled
// visit. State defaults to "pendente" on create when omitted.
type CheckinRequest struct {
	State        string     `json:"estado" binding:"omitempty,oneof=pendente confirmado concluido cancelado"`
	Phone        string     `json:"telefone"`
	ServiceID    string     `json:"servico" binding:"required"`
	ReservedDate string     `json:"data_reservada" binding:"required"`
	StartedAt    *time.Time `json:"data_inicio"`
	FinishedAt   *time.Time `json:"data_fim"`
}

func (r CheckinRequest) ToInput() usecase.CheckinInput {
	return usecase.CheckinInput{
		State:        entities.CheckinState(r.State),
		Phone:        r.Phone,
		ServiceID:    r.ServiceID,
		ReservedDate: r.ReservedDate,
		StartedAt:    r.StartedAt,
		FinishedAt:   r.FinishedAt,
	}
}
