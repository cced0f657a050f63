package entities

import (
	"encoding/json"
	"time"
)

// Notification is the console inbox entry. Intake submissions land here with
// Metadata carrying the registration payload; approving such a notification
// provisions the user, an unpaid plan and its plan services.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Metadata:
//   - MetadataRaw keeps the original JSON body for traceability.
//   - For intake submissions it unmarshals into IntakeSubmissionMetadata.
type Notification struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	IsRead      bool            `json:"is_read"`
	MetadataRaw json.RawMessage `json:"metadata,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IntakeSubmissionUser is the registration payload nested inside an intake
// submission notification.
type IntakeSubmissionUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
	CPF      string `json:"cpf_cnpj"`
	Phone    string `json:"telefone"`

	Gender    string `json:"genero"`
	BirthDate string `json:"data_nascimento"`
	CEP       string `json:"cep"`
	Company   string `json:"empresa"`
}

// IntakeSubmissionService is one selected service line inside an intake
// submission notification.
type IntakeSubmissionService struct {
	ServiceID      string  `json:"servico"`
	ServiceName    string  `json:"name"`
	Frequency      int     `json:"frequencia_value"`
	FrequencyLabel string  `json:"frequencia"`
	Price          float64 `json:"price"`
}

// IntakeSubmissionMetadata is the full metadata payload produced by the public
// intake wizard's final submission.
type IntakeSubmissionMetadata struct {
	Type     string                    `json:"type"`
	User     IntakeSubmissionUser      `json:"user"`
	Services []IntakeSubmissionService `json:"services"`
}

const NotificationTypeIntakeSubmission = "user"
