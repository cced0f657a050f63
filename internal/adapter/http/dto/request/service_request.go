package request

import (
	"strings"

	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase"
)

// ServiceRequest is the console payload for creating or updating a catalog
// service. The split percentages are validated at the binding layer; the
// three derived prices are computed server side and never accepted as input.
type ServiceRequest struct {
	Name                string  `json:"name" binding:"required"`
	Description         string  `json:"descricao"`
	Gender              string  `json:"genero" binding:"required,oneof=masculino feminino unissex"`
	PartnerID           string  `json:"partner_id" binding:"required"`
	Price               float64 `json:"preco" binding:"required,gte=0"`
	CollaboratorPercent float64 `json:"percent_colab" binding:"gte=0,lte=100"`
	TransferPercent     float64 `json:"percent_repasse" binding:"gte=0,lte=100"`
}

func (r ServiceRequest) ToInput() usecase.ServiceInput {
	return usecase.ServiceInput{
		Name:                strings.TrimSpace(r.Name),
		Description:         strings.TrimSpace(r.Description),
		Gender:              entities.ServiceGender(r.Gender),
		PartnerID:           strings.TrimSpace(r.PartnerID),
		Price:               r.Price,
		CollaboratorPercent: r.CollaboratorPercent,
		TransferPercent:     r.TransferPercent,
	}
}
