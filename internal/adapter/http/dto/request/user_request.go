package request

import (
	"beautytag/internal/domain/entities"
	"beautytag/internal/usecase"
)

// UserRequest is the console payload for registering or editing an account.
// Password is required on create; on update an empty password keeps the
// stored one.
type UserRequest struct {
	Username  string `json:"username"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password"`
	Role      string `json:"role" binding:"required,oneof=admin colaborador parceiro cliente"`
	CPF       string `json:"cpf_cnpj"`
	Phone     string `json:"telefone"`
	Gender    string `json:"genero"`
	BirthDate string `json:"data_nascimento"`
	CEP       string `json:"cep"`
	Company   string `json:"empresa"`
}

func (r UserRequest) ToInput() usecase.UserInput {
	return usecase.UserInput{
		Username:  r.Username,
		Name:      r.Name,
		Email:     r.Email,
		Password:  r.Password,
		Role:      entities.UserRole(r.Role),
		CPF:       r.CPF,
		Phone:     r.Phone,
		Gender:    r.Gender,
		BirthDate: r.BirthDate,
		CEP:       r.CEP,
		Company:   r.Company,
	}
}
