package request

import "encoding/json"

// NotificationRequest creates a console inbox entry. Metadata is kept as raw
// JSON; for intake submissions it carries the registration payload.
type NotificationRequest struct {
	Title    string          `json:"title" binding:"required"`
	Metadata json.RawMessage `json:"metadata"`
}
