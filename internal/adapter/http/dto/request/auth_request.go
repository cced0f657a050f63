package request

import "strings"

// LoginRequest authenticates a console operator by email or username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

func (r LoginRequest) ResolveIdentifier() string {
	return strings.TrimSpace(r.Identifier)
}
