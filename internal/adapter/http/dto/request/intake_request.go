package request

import (
	"strings"

	"beautytag/internal/domain/entities"
)

// IntakeStartRequest opens a public wizard session for a form.
type IntakeStartRequest struct {
	FormID string `json:"form_id" binding:"required"`
}

func (r IntakeStartRequest) ResolveFormID() string {
	return strings.TrimSpace(r.FormID)
}

// IntakeStepRequest carries the step the client believes it is on. Late or
// duplicated requests are detected by comparing it with the stored session.
type IntakeStepRequest struct {
	FromStep int `json:"from_step" binding:"required,gte=1,lte=5"`
}

// IntakeConsentRequest records the step-2 terms decision.
type IntakeConsentRequest struct {
	Accepted *bool `json:"accepted" binding:"required"`
}

// IntakePersonalInfoRequest is the step-3 capture. All fields are required;
// format checks beyond presence happen in the use case, where CPF, WhatsApp
// and CEP are normalized to digits only.
type IntakePersonalInfoRequest struct {
	FromStep  int    `json:"from_step" binding:"required,gte=1,lte=5"`
	Name      string `json:"nome" binding:"required"`
	Email     string `json:"email" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Gender    string `json:"publico" binding:"required"`
	Company   string `json:"empresa" binding:"required"`
	WhatsApp  string `json:"whatsapp" binding:"required"`
	BirthDate string `json:"data_nascimento" binding:"required"`
	CEP       string `json:"cep" binding:"required"`
}

func (r IntakePersonalInfoRequest) ToPersonalInfo() entities.IntakePersonalInfo {
	return entities.IntakePersonalInfo{
		Name:      r.Name,
		Email:     r.Email,
		CPF:       r.CPF,
		Gender:    r.Gender,
		Company:   r.Company,
		WhatsApp:  r.WhatsApp,
		BirthDate: r.BirthDate,
		CEP:       r.CEP,
	}
}

// IntakeSelectionRequest activates a service inside one option slot.
type IntakeSelectionRequest struct {
	OptionID  string `json:"option_id" binding:"required"`
	ServiceID string `json:"servico" binding:"required"`
}

// IntakeFrequencyRequest sets the monthly frequency for one option slot.
// Zero unsets it, so gte=0 rather than required (which rejects zero values).
type IntakeFrequencyRequest struct {
	OptionID  string `json:"option_id" binding:"required"`
	Frequency *int   `json:"frequencia_value" binding:"required,gte=0,lte=4"`
}
