package request

import "encoding/json"

// PlanRequest creates an empty plan for a user; services are attached when an
// intake submission is approved or through the plan-service endpoints.
type PlanRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// PlanServiceRequest attaches or edits a plan's service line. Frequency is
// monthly usage, 1..4.
type PlanServiceRequest struct {
	ServiceID string `json:"servico" binding:"required"`
	Frequency *int   `json:"frequencia_value" binding:"required,gte=1,lte=4"`
}

// PlanPaymentRequest carries the gateway payload for charging a plan. The
// amount is computed server side from the plan's services; a client-sent
// transaction_amount inside the payload is overwritten.
type PlanPaymentRequest struct {
	Payment json.RawMessage `json:"payment" binding:"required"`
}
