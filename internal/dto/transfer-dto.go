package dto

type CreateTransferDTO struct {
	UserID         string  `json:"user_id" validate:"required,uuid4"`
	ToDepartmentID int64   `json:"to_department_id" validate:"required"`
	EffectiveDate  string  `json:"effective_date" validate:"required,datetime=2006-01-02"`
	Note           *string `json:"note" validate:"omitempty,max=500"`
}

type TransferDTO struct {
	ID               int64   `json:"id"`
	UserID           string  `json:"user_id"`
	FromDepartmentID *int64  `json:"from_department_id,omitempty"`
	ToDepartmentID   int64   `json:"to_department_id"`
	EffectiveDate    string  `json:"effective_date"`
	Note             *string `json:"note,omitempty"`
}
