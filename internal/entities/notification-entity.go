package entities

import (
	"pulse/pkg/types"
)

type Notification struct {
	ID          int64  `json:"id" db:"id"`
	RecipientID string `json:"recipient_id" db:"recipient_id"`
	Type        string `json:"type" db:"type"`
	Message     string `json:"message" db:"message"`
	Link        string `json:"link,omitempty" db:"link"`
	IsRead      bool   `json:"is_read" db:"is_read"`

	types.BaseEntity
}
