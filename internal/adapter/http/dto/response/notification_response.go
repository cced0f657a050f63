package response

import (
	"encoding/json"
	"time"

	"beautytag/internal/domain/entities"
)

type NotificationResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	IsRead    bool            `json:"is_read"`
	Metadata  json.RawMessage `json:"metadata,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ApprovalResponse is returned when an intake submission notification is
// approved: the provisioned account plus its unpaid plan.
type ApprovalResponse struct {
	User UserResponse `json:"user"`
	Plan PlanResponse `json:"plan"`
}

func FromNotification(n entities.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		IsRead:    n.IsRead,
		Metadata:  n.MetadataRaw,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}

func FromNotifications(items []entities.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		out = append(out, FromNotification(n))
	}
	return out
}

func FromApproval(u entities.User, p entities.Plan) ApprovalResponse {
	return ApprovalResponse{
		User: FromUser(u),
		Plan: FromPlan(p),
	}
}
