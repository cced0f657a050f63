package request

import "strings"

// FormRequest is the console payload for creating or updating a public intake
// form shell. Options are managed through their own endpoints.
type FormRequest struct {
	Name        string `json:"nome" binding:"required"`
	Description string `json:"descricao"`
}

func (r FormRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

func (r FormRequest) ResolveDescription() string {
	return strings.TrimSpace(r.Description)
}

// FormOptionRequest configures one option slot: the required primary service
// and its interchangeable secondary alternatives.
type FormOptionRequest struct {
	PrimaryServiceID    string   `json:"servico" binding:"required"`
	SecondaryServiceIDs []string `json:"servicos_secundarios"`
}

func (r FormOptionRequest) ResolvePrimaryServiceID() string {
	return strings.TrimSpace(r.PrimaryServiceID)
}

func (r FormOptionRequest) ResolveSecondaryServiceIDs() []string {
	out := make([]string, 0, len(r.SecondaryServiceIDs))
	for _, id := range r.SecondaryServiceIDs {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}
