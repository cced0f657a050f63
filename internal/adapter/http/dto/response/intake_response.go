package response

import "beautytag/internal/domain/entities"

type IntakeSelectionResponse struct {
	OptionID    string  `json:"option_id"`
	ServiceID   string  `json:"servico"`
	ServiceName string  `json:"name"`
	Price       float64 `json:"price"`
	Frequency   int     `json:"frequencia_value"`
	LineTotal   float64 `json:"line_total"`
}

// IntakeSessionResponse is the wizard state returned after every step
// operation: current step, the option catalog, the captured data so far and
// the running plan total.
type IntakeSessionResponse struct {
	ID            string                      `json:"id"`
	FormID        string                      `json:"form_id"`
	CurrentStep   int                         `json:"current_step"`
	AcceptedTerms bool                        `json:"accepted_terms"`
	PersonalInfo  entities.IntakePersonalInfo `json:"personal_info"`
	Options       []FormOptionResponse        `json:"options"`
	Selections    []IntakeSelectionResponse   `json:"selections"`
	PlanTotal     float64                     `json:"plan_total"`
	Submitted     bool                        `json:"submitted"`
}

func FromIntakeSession(s entities.IntakeSession) IntakeSessionResponse {
	options := make([]FormOptionResponse, 0, len(s.Options))
	for _, o := range s.Options {
		options = append(options, FromFormOption(o))
	}
	selections := make([]IntakeSelectionResponse, 0, len(s.Selections))
	for _, sel := range s.Selections {
		selections = append(selections, IntakeSelectionResponse{
			OptionID:    sel.OptionID,
			ServiceID:   sel.ServiceID,
			ServiceName: sel.ServiceName,
			Price:       sel.Price,
			Frequency:   sel.Frequency,
			LineTotal:   sel.LineTotal,
		})
	}
	return IntakeSessionResponse{
		ID:            s.ID,
		FormID:        s.FormID,
		CurrentStep:   s.CurrentStep,
		AcceptedTerms: s.AcceptedTerms,
		PersonalInfo:  s.PersonalInfo,
		Options:       options,
		Selections:    selections,
		PlanTotal:     s.PlanTotal(),
		Submitted:     s.Submitted,
	}
}
