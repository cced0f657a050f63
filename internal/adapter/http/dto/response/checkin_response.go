package response

import (
	"time"

	"beautytag/internal/domain/entities"
)

type CheckinResponse struct {
	ID           string     `json:"id"`
	Hash         string     `json:"hash"`
	State        string     `json:"estado"`
	Phone        string     `json:"telefone,omitempty"`
	ServiceID    string     `json:"servico"`
	ReservedDate string     `json:"data_reservada"`
	StartedAt    *time.Time `json:"data_inicio,omitempty"`
	FinishedAt   *time.Time `json:"data_fim,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromCheckin(c entities.Checkin) CheckinResponse {
	return CheckinResponse{
		ID:           c.ID,
		Hash:         c.Hash,
		State:        string(c.State),
		Phone:        c.Phone,
		ServiceID:    c.ServiceID,
		ReservedDate: c.ReservedDate,
		StartedAt:    c.StartedAt,
		FinishedAt:   c.FinishedAt,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func FromCheckins(items []entities.Checkin) []CheckinResponse {
	out := make([]CheckinResponse, 0, len(items))
	for _, c := range items {
		out = append(out, FromCheckin(c))
	}
	return out
}
