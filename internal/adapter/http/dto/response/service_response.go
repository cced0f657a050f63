package response

import (
	"time"

	"beautytag/internal/domain/entities"
)

type ServiceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"descricao,omitempty"`
	Gender      string `json:"genero"`
	PartnerID   string `json:"partner_id"`

	Price               float64 `json:"preco"`
	CollaboratorPercent float64 `json:"percent_colab"`
	TransferPercent     float64 `json:"percent_repasse"`
	CollaboratorPrice   float64 `json:"preco_colab"`
	PartnerPrice        float64 `json:"preco_parceiro"`
	Profit              float64 `json:"lucro"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	return ServiceResponse{
		ID:                  s.ID,
		Name:                s.Name,
		Description:         s.Description,
		Gender:              string(s.Gender),
		PartnerID:           s.PartnerID,
		Price:               s.Price,
		CollaboratorPercent: s.CollaboratorPercent,
		TransferPercent:     s.TransferPercent,
		CollaboratorPrice:   s.CollaboratorPrice,
		PartnerPrice:        s.PartnerPrice,
		Profit:              s.Profit,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func FromServices(items []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(items))
	for _, s := range items {
		out = append(out, FromService(s))
	}
	return out
}
