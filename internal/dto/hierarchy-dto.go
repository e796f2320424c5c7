package dto

// ReparentDTO is the drag-and-drop payload from the org-chart widget.
type ReparentDTO struct {
	UserID    string `json:"user_id" validate:"required,uuid4"`
	ReportsTo string `json:"reports_to" validate:"required,uuid4"`
}
