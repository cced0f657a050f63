package entities

import "time"

// CheckinState represents the lifecycle of a scheduled visit.
type CheckinState string

const (
	CheckinStatePendente   CheckinState = "pendente"
	CheckinStateConfirmado CheckinState = "confirmado"
	CheckinStateConcluido  CheckinState = "concluido"
	CheckinStateCancelado  CheckinState = "cancelado"
)

// Checkin is a scheduled service visit. Hash is the opaque code handed to the
// customer to confirm presence at the partner location.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (hash-index): hash
type Checkin struct {
	ID           string       `json:"id"`
	Hash         string       `json:"hash"`
	State        CheckinState `json:"estado"`
	Phone        string       `json:"telefone"`
	ServiceID    string       `json:"servico"`
	ReservedDate string       `json:"data_reservada"` // date only, YYYY-MM-DD
	StartedAt    *time.Time   `json:"data_inicio,omitempty"`
	FinishedAt   *time.Time   `json:"data_fim,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
