package response

import (
	"time"

	"beautytag/internal/domain/entities"
)

// UserResponse never carries the password hash.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	CPF      string `json:"cpf_cnpj,omitempty"`
	Phone    string `json:"telefone,omitempty"`
	Blocked  bool   `json:"blocked"`

	Gender    string `json:"genero,omitempty"`
	BirthDate string `json:"data_nascimento,omitempty"`
	CEP       string `json:"cep,omitempty"`
	Company   string `json:"empresa,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CPF:       u.CPF,
		Phone:     u.Phone,
		Blocked:   u.Blocked,
		Gender:    u.Metadata.Gender,
		BirthDate: u.Metadata.BirthDate,
		CEP:       u.Metadata.CEP,
		Company:   u.Metadata.Company,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromUsers(items []entities.User) []UserResponse {
	out := make([]UserResponse, 0, len(items))
	for _, u := range items {
		out = append(out, FromUser(u))
	}
	return out
}
