package entities

import "time"

// ServiceGender tags which audience a service is offered to.
type ServiceGender string

const (
	ServiceGenderMasculino ServiceGender = "masculino"
	ServiceGenderFeminino  ServiceGender = "feminino"
	ServiceGenderUnissex   ServiceGender = "unissex"
)

// Service is a catalog entry offered through the marketplace.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (partner_id-index): partner_id
//
// Monetary representation:
//   - Price is the listed gross price.
//   - CollaboratorPrice/PartnerPrice/Profit are derived from Price and the two
//     percentages at save time; they are never edited directly.
type Service struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"descricao"`
	Gender      ServiceGender `json:"genero"`
	PartnerID   string        `json:"partner_id"`

	Price               float64 `json:"preco"`
	CollaboratorPercent float64 `json:"percent_colab"`
	TransferPercent     float64 `json:"percent_repasse"`
	CollaboratorPrice   float64 `json:"preco_colab"`
	PartnerPrice        float64 `json:"preco_parceiro"`
	Profit              float64 `json:"lucro"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
