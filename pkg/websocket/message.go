package websocket

import "time"

// Envelope wraps every outgoing message with a type the frontend can
// dispatch on.
type Envelope struct {
	Type      string      `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

// NotificationPayload is the bell-icon notification DTO.
type NotificationPayload struct {
	EventID   string    `json:"eventId"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"isRead"`
	Message   string    `json:"message"`
	Link      string    `json:"link,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
