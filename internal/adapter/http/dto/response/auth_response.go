package response

import "beautytag/internal/domain/entities"

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func FromLogin(s entities.Session, u entities.User) LoginResponse {
	return LoginResponse{
		Token: s.Token,
		User:  FromUser(u),
	}
}
