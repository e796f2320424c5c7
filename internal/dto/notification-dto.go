package dto

type NotificationDTO struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Link      string `json:"link,omitempty"`
	IsRead    bool   `json:"is_read"`
	CreatedAt string `json:"created_at"`
}

type MarkReadDTO struct {
	IDs []int64 `json:"ids" validate:"required,min=1"`
}
