package entities

import "time"

// UserRole distinguishes console operators from partners and end customers.
type UserRole string

const (
	UserRoleAdmin        UserRole = "admin"
	UserRoleCollaborator UserRole = "colaborador"
	UserRolePartner      UserRole = "parceiro"
	UserRoleCustomer     UserRole = "cliente"
)

// UserMetadata carries the optional profile attributes captured at intake.
type UserMetadata struct {
	Gender    string `json:"genero,omitempty"`
	BirthDate string `json:"data_nascimento,omitempty"`
	CEP       string `json:"cep,omitempty"`
	Company   string `json:"empresa,omitempty"`
}

// User is an account in the console: operators, partners and customers
// provisioned from approved intake submissions.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (email-index): email
//
// PasswordHash is a bcrypt hash; it never leaves the persistence/usecase
// boundary (response DTOs omit it).
type User struct {
	ID           string       `json:"id"`
	Username     string       `json:"username"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	Role         UserRole     `json:"role"`
	CPF          string       `json:"cpf_cnpj"`
	Phone        string       `json:"telefone"`
	Blocked      bool         `json:"blocked"`
	Metadata     UserMetadata `json:"metadata"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session is an authenticated console session, persisted in Redis with a TTL.
// Token is the opaque bearer credential handed to the client at login.
type Session struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	Role      UserRole  `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}
