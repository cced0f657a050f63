package entities

import "time"

// FormOption is one configurable slot of a public intake form: a required
// primary service plus interchangeable secondary alternatives.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (form_id-index): form_id
//
// Position keeps the option order stable when a form is rendered.
type FormOption struct {
	ID                  string   `json:"id"`
	FormID              string   `json:"form_id"`
	Position            int      `json:"position"`
	PrimaryServiceID    string   `json:"servico"`
	SecondaryServiceIDs []string `json:"servicos_secundarios"`

	// Populated views, filled on public reads only.
	PrimaryService    *Service  `json:"servico_populated,omitempty"`
	SecondaryServices []Service `json:"servicos_secundarios_populated,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Form is a public intake form identifier plus its ordered option slots.
//
// Storage model (DynamoDB):
//   - PK: id
//
// A form with zero options is considered disabled: the public wizard refuses
// to advance past the welcome step.
type Form struct {
	ID          string       `json:"id"`
	Name        string       `json:"nome"`
	Description string       `json:"descricao"`
	Options     []FormOption `json:"formulario_opcaos,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}
