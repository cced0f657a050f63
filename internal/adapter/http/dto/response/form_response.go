package response

import (
	"time"

	"beautytag/internal/domain/entities"
)

type FormOptionResponse struct {
	ID                  string   `json:"id"`
	FormID              string   `json:"form_id"`
	Position            int      `json:"position"`
	PrimaryServiceID    string   `json:"servico"`
	SecondaryServiceIDs []string `json:"servicos_secundarios"`

	PrimaryService    *ServiceResponse  `json:"servico_populated,omitempty"`
	SecondaryServices []ServiceResponse `json:"servicos_secundarios_populated,omitempty"`
}

type FormResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"nome"`
	Description string               `json:"descricao,omitempty"`
	Options     []FormOptionResponse `json:"formulario_opcaos,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

func FromFormOption(o entities.FormOption) FormOptionResponse {
	resp := FormOptionResponse{
		ID:                  o.ID,
		FormID:              o.FormID,
		Position:            o.Position,
		PrimaryServiceID:    o.PrimaryServiceID,
		SecondaryServiceIDs: o.SecondaryServiceIDs,
	}
	if o.PrimaryService != nil {
		primary := FromService(*o.PrimaryService)
		resp.PrimaryService = &primary
	}
	if len(o.SecondaryServices) > 0 {
		resp.SecondaryServices = FromServices(o.SecondaryServices)
	}
	return resp
}

func FromForm(f entities.Form) FormResponse {
	resp := FormResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
	for _, o := range f.Options {
		resp.Options = append(resp.Options, FromFormOption(o))
	}
	return resp
}

func FromForms(items []entities.Form) []FormResponse {
	out := make([]FormResponse, 0, len(items))
	for _, f := range items {
		out = append(out, FromForm(f))
	}
	return out
}
