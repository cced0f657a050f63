package entities

import "time"

// Intake wizard steps, in order. Confirmation is terminal; restarting requires
// a fresh session.
const (
	IntakeStepWelcome          = 1
	IntakeStepConsent          = 2
	IntakeStepPersonalInfo     = 3
	IntakeStepServiceSelection = 4
	IntakeStepConfirmation     = 5
)

// IntakePersonalInfo is the step-3 capture. CPF, WhatsApp and CEP are stored
// digits-only; normalization happens before the step 3 to 4 transition.
type IntakePersonalInfo struct {
	Name      string `json:"nome"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	Gender    string `json:"publico"`
	Company   string `json:"empresa"`
	WhatsApp  string `json:"whatsapp"`
	BirthDate string `json:"data_nascimento"`
	CEP       string `json:"cep"`
}

// IntakeSelection is one configured option slot: the service currently active
// for the slot (primary by default, or a chosen secondary) and the monthly
// frequency. LineTotal is CollaboratorPrice × Frequency, recomputed on every
// change.
type IntakeSelection struct {
	OptionID    string  `json:"option_id"`
	ServiceID   string  `json:"servico"`
	ServiceName string  `json:"name"`
	Price       float64 `json:"price"` // collaborator price of the active service
	Frequency   int     `json:"frequency"`
	LineTotal   float64 `json:"line_total"`
}

// IntakeSession is the transient state of one public wizard run, held in Redis
// for the session TTL and discarded on successful submission.
//
// Invariants:
//   - CurrentStep stays within 1..5 and only moves through the guarded transitions.
//   - Selections holds at most one entry per option slot; swapping the active
//     service inside a slot replaces the entry atomically.
//   - A session whose form has zero options never advances past step 1.
type IntakeSession struct {
	ID            string             `json:"id"`
	FormID        string             `json:"form_id"`
	CurrentStep   int                `json:"current_step"`
	AcceptedTerms bool               `json:"accepted_terms"`
	PersonalInfo  IntakePersonalInfo `json:"personal_info"`
	Options       []FormOption       `json:"options"`
	Selections    []IntakeSelection  `json:"selections"`
	Submitted     bool               `json:"submitted"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

// Selection returns the slot entry for optionID, or nil.
func (s *IntakeSession) Selection(optionID string) *IntakeSelection {
	for i := range s.Selections {
		if s.Selections[i].OptionID == optionID {
			return &s.Selections[i]
		}
	}
	return nil
}

// RemoveSelection drops the slot entry for optionID if present.
func (s *IntakeSession) RemoveSelection(optionID string) {
	for i := range s.Selections {
		if s.Selections[i].OptionID == optionID {
			s.Selections = append(s.Selections[:i], s.Selections[i+1:]...)
			return
		}
	}
}

// PlanTotal sums the line totals of all configured slots. Slots without a
// chosen frequency contribute nothing.
func (s *IntakeSession) PlanTotal() float64 {
	total := 0.0
	for _, sel := range s.Selections {
		if sel.Frequency > 0 {
			total += sel.LineTotal
		}
	}
	return total
}

// Option returns the fetched option slot by id, or nil.
func (s *IntakeSession) Option(optionID string) *FormOption {
	for i := range s.Options {
		if s.Options[i].ID == optionID {
			return &s.Options[i]
		}
	}
	return nil
}
