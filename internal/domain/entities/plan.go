package entities

import "time"

// Plan groups a user's selected services. IsPaid flips once the plan's charge
// is approved by the payment gateway.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
type Plan struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	IsPaid    bool      `json:"is_pago"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PlanService is one service line inside a plan with its chosen monthly
// frequency. FrequencyLabel is the human label ("2x por mês") kept alongside
// the numeric value, as the intake form captures both.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (plan_id-index): plan_id
type PlanService struct {
	ID             string    `json:"id"`
	PlanID         string    `json:"plan_id"`
	ServiceID      string    `json:"servico"`
	Frequency      int       `json:"frequencia_value"`
	FrequencyLabel string    `json:"frequencia"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
